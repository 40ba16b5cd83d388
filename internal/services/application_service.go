package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
)

type ApplicationService struct {
	DB    *gorm.DB
	Email EmailSender
}

func NewApplicationService(db *gorm.DB, email EmailSender) *ApplicationService {
	return &ApplicationService{
		DB:    db,
		Email: email,
	}
}

// Apply submits an application to a job. The applicant needs an uploaded
// résumé, and one application per (job, applicant) pair is enforced. The
// owning company is notified best-effort.
func (s *ApplicationService) Apply(jobID uint, applicantID string, resumeID *string) (*models.Application, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}

	var applicant models.User
	if err := s.DB.First(&applicant, "id = ?", applicantID).Error; err != nil {
		return nil, err
	}
	if resumeID == nil || *resumeID == "" {
		if applicant.ResumePath == "" {
			return nil, apperr.NewValidation("resume_id", "a résumé must be uploaded before applying")
		}
		resumeID = &applicant.ResumePath
	}

	var existing int64
	s.DB.Model(&models.Application{}).Where("job_id = ? AND user_id = ?", jobID, applicantID).Count(&existing)
	if existing > 0 {
		return nil, apperr.Conflict("application already submitted for this job")
	}

	application := &models.Application{
		JobID:     jobID,
		UserID:    applicantID,
		ResumeID:  resumeID,
		AppliedAt: time.Now().UTC(),
		Status:    models.ApplicationReceived,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, err
	}

	s.notifyCompany(&job, &applicant)
	return application, nil
}

// ListForApplicant returns the caller's own applications, newest first.
func (s *ApplicationService) ListForApplicant(applicantID string, page, pageSize int) ([]models.Application, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.Application{}).Where("user_id = ?", applicantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Application
	err := query.
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListForJob returns the applications for a job the caller owns. A missing
// job or a caller who is neither admin nor owner yields a silent empty
// result, not an error.
func (s *ApplicationService) ListForJob(jobID uint, page, pageSize int, callerID string, isAdmin bool) ([]models.Application, int64, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Application{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	if !isAdmin && job.CompanyID != callerID {
		return []models.Application{}, 0, nil
	}

	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.Application{}).Where("job_id = ?", jobID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Application
	err = query.
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateStatus sets an application's status. There is no transition graph:
// any of the four statuses may be set by the owning company or an admin.
// A change to Accepted or Rejected notifies the applicant best-effort.
func (s *ApplicationService) UpdateStatus(id uint, statusToken string, callerID string, isAdmin bool) (*models.Application, error) {
	var application models.Application
	err := s.DB.Preload("Job").First(&application, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("application")
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && application.Job.CompanyID != callerID {
		return nil, apperr.Forbidden("application status update")
	}

	newStatus, ok := models.ParseApplicationStatus(statusToken)
	if !ok {
		return nil, apperr.BadRequest("unknown application status")
	}

	changed := application.Status != newStatus
	application.Status = newStatus
	if err := s.DB.Save(&application).Error; err != nil {
		return nil, err
	}

	if changed && (newStatus == models.ApplicationAccepted || newStatus == models.ApplicationRejected) {
		s.notifyApplicant(&application, newStatus)
	}
	return &application, nil
}

// ResumeVisibleToCompany reports whether any application referencing the
// résumé was submitted to a job the company owns.
func (s *ApplicationService) ResumeVisibleToCompany(resumeID, companyID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.resume_id = ? AND jobs.company_id = ?", resumeID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (s *ApplicationService) notifyCompany(job *models.Job, applicant *models.User) {
	var company models.User
	if err := s.DB.First(&company, "id = ?", job.CompanyID).Error; err != nil || company.Email == "" {
		return
	}
	subject := fmt.Sprintf("Új jelentkező: %s", job.Title)
	body := fmt.Sprintf(`
		<h1>Új jelentkezés érkezett</h1>
		<p>A(z) <b>%s</b> álláshirdetésre új jelentkezés érkezett.</p>
		<p>Jelentkező: %s (%s)</p>
		<p>Kérjük, jelentkezzen be az Álláshirdető portálra a részletekért.</p>
	`, job.Title, applicant.FullName, applicant.Email)
	s.Email.Send(company.Email, subject, body)
}

func (s *ApplicationService) notifyApplicant(application *models.Application, status models.ApplicationStatus) {
	var applicant models.User
	if err := s.DB.First(&applicant, "id = ?", application.UserID).Error; err != nil || applicant.Email == "" {
		return
	}
	statusHu := "Elutasítva"
	color := "red"
	if status == models.ApplicationAccepted {
		statusHu = "Elfogadva"
		color = "green"
	}
	subject := fmt.Sprintf("Jelentkezés állapota: %s", statusHu)
	body := fmt.Sprintf(`
		<h2>Tisztelt %s!</h2>
		<p>A(z) <b>%s</b> állásra leadott jelentkezésének státusza megváltozott.</p>
		<p>Új státusz: <b style='color:%s'>%s</b></p>
		<p>További információért keresse a céget vagy lépjen be az oldalra.</p>
	`, applicant.FullName, application.Job.Title, color, statusHu)
	s.Email.Send(applicant.Email, subject, body)
}
