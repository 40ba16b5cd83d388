package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

func TestJobListHidesUnapprovedAndArchived(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)

	visible := createJob(t, db, "company-1", true, false)
	createJob(t, db, "company-1", false, false) // pending moderation
	createJob(t, db, "company-1", true, true)   // archived

	items, total, err := svc.List(JobListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, visible.ID, items[0].ID)
}

func TestJobListFilters(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)

	jobA := createJob(t, db, "company-1", true, false)
	jobA.Title = "Pénzügyi elemző"
	jobA.Location = "Debrecen"
	jobA.Category = models.CategoryPenzugy
	require.NoError(t, db.Save(jobA).Error)
	createJob(t, db, "company-1", true, false)

	tests := []struct {
		name  string
		query JobListQuery
		want  int64
	}{
		{"by substring", JobListQuery{Q: "elemző"}, 1},
		{"by location", JobListQuery{Location: "Debrecen"}, 1},
		{"by category", JobListQuery{Category: &jobA.Category}, 1},
		{"no match", JobListQuery{Q: "nincs ilyen"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := svc.List(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestJobListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)

	older := createJob(t, db, "company-1", true, false)
	older.PostedAt = time.Now().UTC().AddDate(0, 0, -5)
	require.NoError(t, db.Save(older).Error)
	newer := createJob(t, db, "company-1", true, false)

	items, _, err := svc.List(JobListQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)
}

func TestGetByIDDisguisesUnapprovedAsNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	job := createJob(t, db, "company-1", false, false)

	// Anonymous and strangers get NotFound, never Forbidden.
	_, err := svc.GetByID(job.ID, "", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	_, err = svc.GetByID(job.ID, "someone-else", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	// The owner and an admin see it.
	got, err := svc.GetByID(job.ID, "company-1", false)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	_, err = svc.GetByID(job.ID, "admin-1", true)
	assert.NoError(t, err)
}

func TestGetByIDArchivedIsNotFoundForEveryone(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	job := createJob(t, db, "company-1", true, true)

	_, err := svc.GetByID(job.ID, "company-1", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	_, err = svc.GetByID(job.ID, "admin-1", true)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCreateStartsUnapproved(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)

	job, err := svc.Create(&dtos.CreateJobRequest{
		Title:       "Oktatási referens",
		Company:     "Suli Kft.",
		Location:    "Szeged",
		Description: "Tananyagfejlesztés",
		Category:    "Oktatás",
	}, "company-1")
	require.NoError(t, err)
	assert.False(t, job.Approved)
	assert.False(t, job.IsArchived)

	// String-name round trip.
	var loaded models.Job
	require.NoError(t, db.First(&loaded, job.ID).Error)
	assert.Equal(t, models.CategoryOktatas, loaded.Category)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)

	_, err := svc.Create(&dtos.CreateJobRequest{
		Title: "x", Company: "x", Location: "x", Description: "x", Category: "Mezőgazdaság",
	}, "company-1")
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestUpdateOwnershipGuard(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	job := createJob(t, db, "company-1", true, false)

	req := &dtos.UpdateJobRequest{
		Title: "Módosított", Company: "Teszt Kft.", Location: "Budapest",
		Description: "Új leírás", Category: "Informatika",
	}

	_, err := svc.Update(job.ID, req, "other-company", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	updated, err := svc.Update(job.ID, req, "company-1", false)
	require.NoError(t, err)
	assert.Equal(t, "Módosított", updated.Title)
	// Editing an approved job does not reset its approval.
	assert.True(t, updated.Approved)
}

func TestArchiveMakesJobImmutable(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	job := createJob(t, db, "company-1", true, false)

	require.NoError(t, svc.Archive(job.ID, "company-1", false))

	var loaded models.Job
	require.NoError(t, db.First(&loaded, job.ID).Error)
	assert.True(t, loaded.IsArchived)

	// Row is retained but excluded from reads and refuses edits.
	_, err := svc.GetByID(job.ID, "company-1", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	_, err = svc.Update(job.ID, &dtos.UpdateJobRequest{
		Title: "x", Company: "x", Location: "x", Description: "x", Category: "Informatika",
	}, "company-1", false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, total, err := svc.List(JobListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestModerateIsRedecidable(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	job := createJob(t, db, "company-1", false, false)

	approved, err := svc.Moderate(job.ID, true, nil)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	_, total, err := svc.List(JobListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	reason := "spam"
	rejected, err := svc.Moderate(job.ID, false, &reason)
	require.NoError(t, err)
	assert.False(t, rejected.Approved)
	require.NotNil(t, rejected.ModerationReason)
	assert.Equal(t, "spam", *rejected.ModerationReason)

	_, total, err = svc.List(JobListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestPendingQueueOldestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)

	first := createJob(t, db, "company-1", false, false)
	first.PostedAt = time.Now().UTC().AddDate(0, 0, -2)
	require.NoError(t, db.Save(first).Error)
	second := createJob(t, db, "company-1", false, false)
	createJob(t, db, "company-1", true, false) // approved, not in queue

	items, total, err := svc.ListPending(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestListMineIncludesUnapproved(t *testing.T) {
	db := openTestDB(t)
	svc := NewJobService(db)
	createUser(t, db, "company-1", models.RoleCompany)
	createUser(t, db, "company-2", models.RoleCompany)

	createJob(t, db, "company-1", true, false)
	createJob(t, db, "company-1", false, false)
	createJob(t, db, "company-1", true, true) // archived drops out
	createJob(t, db, "company-2", true, false)

	_, total, err := svc.ListMine("company-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
