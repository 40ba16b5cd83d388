package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/logging"
	"jobboard/internal/models"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logging.Log.Fatalf("Failed to connect to database: %v", err)
	}

	logging.Log.Info("Database connection established")

	logging.Log.Info("Running migrations...")
	if err := Migrate(db); err != nil {
		logging.Log.Fatalf("Migration failed: %v", err)
	}
	return db
}

// Migrate creates or updates the schema for every entity. Shared with the
// test suites, which run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Report{},
		&models.CompanyRequest{},
		&models.CompanyProfile{},
	)
}
