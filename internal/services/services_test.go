package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard/internal/database"
	"jobboard/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	for _, name := range []string{models.RoleAdmin, models.RoleCompany, models.RoleJobSeeker} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, id string, roles ...string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       id,
		Email:    fmt.Sprintf("%s@test.hu", id),
		FullName: id,
	}
	require.NoError(t, db.Create(user).Error)
	for _, name := range roles {
		var r models.Role
		require.NoError(t, db.Where("name = ?", name).First(&r).Error)
		require.NoError(t, db.Model(user).Association("Roles").Append(&r))
	}
	require.NoError(t, db.Preload("Roles").First(user, "id = ?", id).Error)
	return user
}

func createJob(t *testing.T, db *gorm.DB, companyID string, approved, archived bool) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       "Go fejlesztő",
		Description: "Backend munka",
		Company:     "Teszt Kft.",
		Location:    "Budapest",
		Category:    models.CategoryInformatika,
		PostedAt:    time.Now().UTC(),
		CompanyID:   companyID,
		Approved:    approved,
		IsArchived:  archived,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

type sentMail struct {
	to      string
	subject string
}

// fakeEmail records sends instead of dialing SMTP.
type fakeEmail struct {
	sent []sentMail
}

func (f *fakeEmail) Send(to, subject, body string) {
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
}
