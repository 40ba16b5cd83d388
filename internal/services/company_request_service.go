package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type CompanyRequestService struct {
	DB *gorm.DB
}

func NewCompanyRequestService(db *gorm.DB) *CompanyRequestService {
	return &CompanyRequestService{
		DB: db,
	}
}

// Create files a request for the Company role. Only one pending request per
// user may exist at a time.
func (s *CompanyRequestService) Create(req *dtos.CreateCompanyRequestRequest, userID string) (*models.CompanyRequest, error) {
	var pending int64
	err := s.DB.Model(&models.CompanyRequest{}).
		Where("user_id = ? AND status = ?", userID, models.RequestPending).
		Count(&pending).Error
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, apperr.Conflict("a pending company request already exists")
	}

	request := &models.CompanyRequest{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Message:     req.Message,
		Status:      models.RequestPending,
	}
	if err := s.DB.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// List orders pending requests first, newest within each status.
func (s *CompanyRequestService) List(status *models.CompanyRequestStatus, page, pageSize int) ([]models.CompanyRequest, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.CompanyRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.CompanyRequest
	err := query.
		Order("CASE WHEN status = 'Pending' THEN 0 ELSE 1 END").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *CompanyRequestService) GetByID(id uint) (*models.CompanyRequest, error) {
	var request models.CompanyRequest
	err := s.DB.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("company request")
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Decide approves or rejects a pending request. Approval migrates the
// requester's roles (drop JobSeeker, add Company, keep everything else) in
// the same transaction as the status change, so a failed role grant rolls
// the decision back.
func (s *CompanyRequestService) Decide(id uint, statusToken string, note *string, deciderID string) (*models.CompanyRequest, error) {
	status, ok := models.ParseCompanyRequestStatus(statusToken)
	if !ok || status == models.RequestPending {
		return nil, apperr.BadRequest("decision must be Approved or Rejected")
	}

	var request models.CompanyRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&request, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("company request")
		}
		if err != nil {
			return err
		}
		if request.Status != models.RequestPending {
			return apperr.BadRequest("company request already decided")
		}

		now := time.Now().UTC()
		request.Status = status
		request.DecisionNote = note
		request.DecidedAt = &now
		request.DecidedByUserID = &deciderID
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		if status == models.RequestApproved {
			return migrateRoles(tx, request.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// migrateRoles swaps JobSeeker for Company on the requester's account,
// preserving any other roles such as Admin.
func migrateRoles(tx *gorm.DB, userID string) error {
	var user models.User
	if err := tx.Preload("Roles").First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if user.HasRole(models.RoleJobSeeker) {
		var seeker models.Role
		if err := tx.Where("name = ?", models.RoleJobSeeker).First(&seeker).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Roles").Delete(&seeker); err != nil {
			return err
		}
	}

	if !user.HasRole(models.RoleCompany) {
		var company models.Role
		if err := tx.Where("name = ?", models.RoleCompany).First(&company).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Roles").Append(&company); err != nil {
			return err
		}
	}
	return nil
}
