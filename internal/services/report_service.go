package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		DB: db,
	}
}

func (s *ReportService) Create(req *dtos.CreateReportRequest, reporterID string) (*models.Report, error) {
	targetType, ok := models.ParseReportTargetType(req.TargetType)
	if !ok {
		return nil, apperr.NewValidation("target_type", "unknown report target type")
	}
	report := &models.Report{
		TargetType:      targetType,
		TargetID:        req.TargetID,
		Reason:          req.Reason,
		Details:         req.Details,
		CreatedByUserID: reporterID,
		Status:          models.ReportOpen,
	}
	if err := s.DB.Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) List(status *models.ReportStatus, targetType *models.ReportTargetType, page, pageSize int) ([]models.Report, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.Report{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if targetType != nil {
		query = query.Where("target_type = ?", *targetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.Report
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ReportService) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	err := s.DB.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("report")
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateStatus records the admin decision. Resolved and Dismissed stamp the
// resolver and timestamp; setting the status back to Open clears the stamp.
func (s *ReportService) UpdateStatus(id uint, statusToken string, note *string, resolverID string) (*models.Report, error) {
	var report models.Report
	err := s.DB.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("report")
	}
	if err != nil {
		return nil, err
	}

	status, ok := models.ParseReportStatus(statusToken)
	if !ok {
		return nil, apperr.BadRequest("unknown report status")
	}

	report.Status = status
	report.ResolutionNote = note
	if status == models.ReportOpen {
		report.ResolvedAt = nil
		report.ResolverUserID = nil
	} else {
		now := time.Now().UTC()
		report.ResolvedAt = &now
		report.ResolverUserID = &resolverID
	}
	if err := s.DB.Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
