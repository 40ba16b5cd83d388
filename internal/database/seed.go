package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/logging"
	"jobboard/internal/models"
)

// Seed fills an empty database with demo roles, accounts, profiles, jobs and
// applications. Safe to run repeatedly: existing rows are left alone.
func Seed(db *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleCompany, models.RoleJobSeeker} {
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&models.Role{Name: name}).Error; err != nil {
			return err
		}
	}

	if _, err := ensureUser(db, "admin@demo.hu", "Admin Teszt", "Admin123!", models.RoleAdmin); err != nil {
		return err
	}

	type companySeed struct {
		email, fullName, companyName string
		website, contactEmail, phone string
		about                        string
	}
	companySeeds := []companySeed{
		{
			email: "company@demo.hu", fullName: "TechNova HR", companyName: "TechNova Kft.",
			website: "https://technova.hu", contactEmail: "karrier@technova.hu", phone: "+36 1 555 1234",
			about: "Egyedi vállalati szoftvereket és felhőmegoldásokat szállító, 40 fős fejlesztő csapat.",
		},
		{
			email: "studio@designhub.hu", fullName: "DesignHub Studio HR", companyName: "DesignHub Studio",
			website: "https://designhub.hu", contactEmail: "hello@designhub.hu", phone: "+36 30 222 3344",
			about: "UX/UI fókusú digitális ügynökség, amely terméktervezésben és brandingben segíti ügyfeleit.",
		},
	}

	companies := map[string]*models.User{}
	for _, cs := range companySeeds {
		user, err := ensureUser(db, cs.email, cs.fullName, "Company123!", models.RoleCompany)
		if err != nil {
			return err
		}
		companies[cs.email] = user

		var count int64
		db.Model(&models.CompanyProfile{}).Where("user_id = ?", user.ID).Count(&count)
		if count == 0 {
			website, contactEmail, phone, about := cs.website, cs.contactEmail, cs.phone, cs.about
			profile := models.CompanyProfile{
				UserID:       user.ID,
				Name:         cs.companyName,
				Website:      &website,
				ContactEmail: &contactEmail,
				ContactPhone: &phone,
				About:        &about,
			}
			if err := db.Create(&profile).Error; err != nil {
				return err
			}
		}
	}

	seeker, err := ensureUser(db, "jobseeker@demo.hu", "Jelentkező Teszt", "Jobseeker123!", models.RoleJobSeeker)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	salary := func(v int) *int { return &v }
	type jobSeed struct {
		title, companyEmail, description, location string
		category                                   models.Category
		salaryMin, salaryMax                       *int
		postedDaysAgo                              int
		approved, archived                         bool
	}
	jobSeeds := []jobSeed{
		{
			title: "Senior Go fejlesztő", companyEmail: "company@demo.hu",
			description: "Felhő alapú ügyfélportált építünk Go és Postgres stackre. Code review és DevOps támogatás vár.",
			location:    "Budapest", category: models.CategoryInformatika,
			salaryMin: salary(900_000), salaryMax: salary(1_200_000), postedDaysAgo: 6, approved: true,
		},
		{
			title: "Junior QA mérnök", companyEmail: "company@demo.hu",
			description: "Teszttervek írása, automatizált UI tesztek, szoros együttműködés fejlesztőkkel.",
			location:    "Debrecen / hibrid", category: models.CategoryInformatika,
			salaryMin: salary(550_000), salaryMax: salary(700_000), postedDaysAgo: 3, approved: true,
		},
		{
			title: "Lead UX designer", companyEmail: "studio@designhub.hu",
			description: "Nemzetközi fintech ügyféllel dolgozunk design systemen és kutatási programon.",
			location:    "Budapest", category: models.CategoryOktatas,
			salaryMin: salary(800_000), salaryMax: salary(1_050_000), postedDaysAgo: 9, approved: true,
		},
		{
			title: "React Native gyakornok", companyEmail: "studio@designhub.hu",
			description: "Mobil prototípusok készítése mentor programmal. Első publikálás, moderációra vár.",
			location:    "Szeged / remote", category: models.CategoryInformatika,
			postedDaysAgo: 1, approved: false,
		},
		{
			title: "Regionális értékesítési vezető", companyEmail: "company@demo.hu",
			description: "HORECA partnerek kezelése és új üzletek felkutatása, céges autóval.",
			location:    "Pécs", category: models.CategoryErtekesites,
			salaryMin: salary(600_000), salaryMax: salary(1_000_000), postedDaysAgo: 20, approved: true, archived: true,
		},
	}

	for _, js := range jobSeeds {
		owner, ok := companies[js.companyEmail]
		if !ok {
			continue
		}
		var count int64
		db.Model(&models.Job{}).Where("company_id = ? AND title = ?", owner.ID, js.title).Count(&count)
		if count > 0 {
			continue
		}
		var profile models.CompanyProfile
		db.Where("user_id = ?", owner.ID).First(&profile)
		job := models.Job{
			Title:       js.title,
			Company:     profile.Name,
			Description: js.description,
			Location:    js.location,
			Category:    js.category,
			SalaryMin:   js.salaryMin,
			SalaryMax:   js.salaryMax,
			PostedAt:    now.AddDate(0, 0, -js.postedDaysAgo),
			CompanyID:   owner.ID,
			Approved:    js.approved,
			IsArchived:  js.archived,
		}
		if err := db.Create(&job).Error; err != nil {
			return err
		}
	}

	var seniorJob models.Job
	if err := db.Where("title = ?", "Senior Go fejlesztő").First(&seniorJob).Error; err == nil {
		var count int64
		db.Model(&models.Application{}).Where("job_id = ? AND user_id = ?", seniorJob.ID, seeker.ID).Count(&count)
		if count == 0 {
			resume := "seed/resume-teszt.pdf"
			app := models.Application{
				JobID:     seniorJob.ID,
				UserID:    seeker.ID,
				ResumeID:  &resume,
				AppliedAt: now.AddDate(0, 0, -3),
				Status:    models.ApplicationInReview,
			}
			if err := db.Create(&app).Error; err != nil {
				return err
			}
		}
	}

	logging.Log.Info("Demo data seeded")
	return nil
}

func ensureUser(db *gorm.DB, email, fullName, password, role string) (*models.User, error) {
	var user models.User
	err := db.Preload("Roles").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user = models.User{
			ID:           uuid.NewString(),
			Email:        email,
			FullName:     fullName,
			PasswordHash: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if !user.HasRole(role) {
		var r models.Role
		if err := db.Where("name = ?", role).First(&r).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&user).Association("Roles").Append(&r); err != nil {
			return nil, err
		}
	}
	return &user, nil
}
