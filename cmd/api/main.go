package main

import (
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/logging"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

func main() {
	// 1. Logger + configuration (env vars override configs/config.yaml)
	logging.Init()
	cfg := config.Load()

	// 2. Database connection
	db := database.Connect(cfg.DatabaseDSN)
	if cfg.SeedDemo {
		if err := database.Seed(db); err != nil {
			logging.Log.Fatalf("Seeding failed: %v", err)
		}
	}

	// 3. Initialize core services
	emailService := services.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, emailService)
	reportService := services.NewReportService(db)
	requestService := services.NewCompanyRequestService(db)
	profileService := services.NewCompanyProfileService(db)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpireDays)

	resumeStore, err := storage.NewResumeStore(cfg.UploadDir)
	if err != nil {
		logging.Log.Fatalf("Could not create upload directory: %v", err)
	}

	// 4. Initialize handlers and router
	h := &handlers.Handlers{
		Auth:         handlers.NewAuthHandler(userService, tokens),
		Users:        handlers.NewUserHandler(userService),
		Jobs:         handlers.NewJobHandler(jobService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Reports:      handlers.NewReportHandler(reportService),
		Requests:     handlers.NewCompanyRequestHandler(requestService),
		Profiles:     handlers.NewCompanyProfileHandler(profileService),
		Uploads:      handlers.NewUploadHandler(resumeStore, userService, applicationService),
		Tokens:       tokens,
	}
	r := handlers.NewRouter(h)

	logging.Log.Infof("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		logging.Log.Fatalf("Server failed to start: %v", err)
	}
}
