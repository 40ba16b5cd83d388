package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// JobListQuery carries the public listing filters.
type JobListQuery struct {
	Q        string
	Location string
	Category *models.Category
	Page     int
	PageSize int
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// List returns the public listing: approved, non-archived jobs, newest first.
func (s *JobService) List(q JobListQuery) ([]models.Job, int64, error) {
	page, pageSize := normalizePage(q.Page, q.PageSize)

	query := s.DB.Model(&models.Job{}).Where("is_archived = ? AND approved = ?", false, true)
	if q.Q != "" {
		like := "%" + q.Q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if q.Location != "" {
		query = query.Where("location = ?", q.Location)
	}
	if q.Category != nil {
		query = query.Where("category = ?", *q.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Job
	err := query.
		Order("posted_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID hides archived jobs entirely, and unapproved jobs from everyone
// but an admin or the owning company. The refusal is a NotFound either way
// so existence is not leaked.
func (s *JobService) GetByID(id uint, callerID string, isAdmin bool) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND is_archived = ?", id, false).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}
	if !job.Approved && !isAdmin && job.CompanyID != callerID {
		return nil, apperr.NotFound("job")
	}
	return &job, nil
}

// Create stores a new, unapproved job for the calling company.
func (s *JobService) Create(req *dtos.CreateJobRequest, companyID string) (*models.Job, error) {
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, apperr.NewValidation("category", "unknown category")
	}
	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Category:    category,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		PostedAt:    time.Now().UTC(),
		CompanyID:   companyID,
		Approved:    false,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update overwrites the editable fields. Archived jobs are immutable, and a
// non-owner non-admin caller gets the same NotFound as a missing job. The
// approval flag is not touched: edits to an approved job stay approved.
func (s *JobService) Update(id uint, req *dtos.UpdateJobRequest, callerID string, isAdmin bool) (*models.Job, error) {
	job, err := s.findOwned(id, callerID, isAdmin)
	if err != nil {
		return nil, err
	}
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, apperr.NewValidation("category", "unknown category")
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Description = req.Description
	job.Category = category
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Archive soft-deletes: the row stays for historical application records.
func (s *JobService) Archive(id uint, callerID string, isAdmin bool) error {
	job, err := s.findOwned(id, callerID, isAdmin)
	if err != nil {
		return err
	}
	job.IsArchived = true
	return s.DB.Save(job).Error
}

// Moderate sets the approval flag and reason unconditionally; a job can be
// re-approved or re-rejected any number of times.
func (s *JobService) Moderate(id uint, approved bool, reason *string) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}
	job.Approved = approved
	job.ModerationReason = reason
	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListPending is the admin moderation queue, oldest first.
func (s *JobService) ListPending(page, pageSize int) ([]models.Job, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.Job{}).Where("is_archived = ? AND approved = ?", false, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Job
	err := query.
		Order("posted_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListMine returns the caller's own non-archived jobs regardless of approval.
func (s *JobService) ListMine(companyID string, page, pageSize int) ([]models.Job, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.Job{}).Where("company_id = ? AND is_archived = ?", companyID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Job
	err := query.
		Order("posted_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// findOwned loads a live job and applies the ownership guard. Missing,
// archived and not-owned all collapse into NotFound.
func (s *JobService) findOwned(id uint, callerID string, isAdmin bool) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND is_archived = ?", id, false).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && job.CompanyID != callerID {
		return nil, apperr.NotFound("job")
	}
	return &job, nil
}
