package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
)

func TestApplyCreatesReceivedAndNotifiesCompany(t *testing.T) {
	db := openTestDB(t)
	email := &fakeEmail{}
	svc := NewApplicationService(db, email)
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)

	application, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationReceived, application.Status)
	require.NotNil(t, application.ResumeID)
	assert.Equal(t, "r1.pdf", *application.ResumeID)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "company-1@test.hu", email.sent[0].to)
}

func TestApplyRequiresResume(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	createUser(t, db, "seeker-1", models.RoleJobSeeker)
	job := createJob(t, db, "company-1", true, false)

	_, err := svc.Apply(job.ID, "seeker-1", nil)
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestApplyRejectsDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)

	_, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)
	_, err = svc.Apply(job.ID, "seeker-1", nil)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestApplyMissingJob(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "seeker-1", models.RoleJobSeeker)

	_, err := svc.Apply(9999, "seeker-1", nil)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListForJobSilentEmpty(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)
	_, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)

	// Missing job: empty result, no error.
	items, total, err := svc.ListForJob(9999, 1, 10, "company-1", false)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), total)

	// Wrong company: the same silent empty, not Forbidden.
	items, total, err = svc.ListForJob(job.ID, 1, 10, "company-2", false)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), total)

	// Owner and admin see the applications.
	_, total, err = svc.ListForJob(job.ID, 1, 10, "company-1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	_, total, err = svc.ListForJob(job.ID, 1, 10, "whoever", true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdateStatusForbiddenForNonOwner(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)
	application, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(application.ID, "Accepted", "company-2", false)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	// Status unchanged after the refused update.
	var loaded models.Application
	require.NoError(t, db.First(&loaded, application.ID).Error)
	assert.Equal(t, models.ApplicationReceived, loaded.Status)
}

func TestUpdateStatusUnknownTokenIsBadRequest(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)
	application, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(application.ID, "Shortlisted", "company-1", false)
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))
}

func TestUpdateStatusNotifiesOnDecision(t *testing.T) {
	db := openTestDB(t)
	email := &fakeEmail{}
	svc := NewApplicationService(db, email)
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)
	application, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)
	email.sent = nil // drop the application notification

	// InReview is not a decision: no mail.
	_, err = svc.UpdateStatus(application.ID, "InReview", "company-1", false)
	require.NoError(t, err)
	assert.Empty(t, email.sent)

	// Accepting notifies the applicant. Token parsing is case-insensitive.
	updated, err := svc.UpdateStatus(application.ID, "accepted", "company-1", false)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.Status)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "seeker-1@test.hu", email.sent[0].to)

	// Re-setting the same status does not notify again.
	_, err = svc.UpdateStatus(application.ID, "Accepted", "company-1", false)
	require.NoError(t, err)
	assert.Len(t, email.sent, 1)
}

func TestApplicantScenarioReceivedToAccepted(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-a", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)

	application, err := svc.Apply(job.ID, "seeker-a", nil)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationReceived, application.Status)

	_, err = svc.UpdateStatus(application.ID, "Accepted", "company-1", false)
	require.NoError(t, err)

	mine, _, err := svc.ListForApplicant("seeker-a", 1, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ApplicationAccepted, mine[0].Status)
}

func TestResumeVisibleToCompany(t *testing.T) {
	db := openTestDB(t)
	svc := NewApplicationService(db, &fakeEmail{})
	createUser(t, db, "company-1", models.RoleCompany)
	seeker := createUser(t, db, "seeker-1", models.RoleJobSeeker)
	seeker.ResumePath = "r1.pdf"
	require.NoError(t, db.Save(seeker).Error)
	job := createJob(t, db, "company-1", true, false)
	_, err := svc.Apply(job.ID, "seeker-1", nil)
	require.NoError(t, err)

	ok, err := svc.ResumeVisibleToCompany("r1.pdf", "company-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ResumeVisibleToCompany("r1.pdf", "company-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
