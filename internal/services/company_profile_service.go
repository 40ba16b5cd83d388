package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type CompanyProfileService struct {
	DB *gorm.DB
}

func NewCompanyProfileService(db *gorm.DB) *CompanyProfileService {
	return &CompanyProfileService{
		DB: db,
	}
}

// GetByUser returns the public profile for a company user.
func (s *CompanyProfileService) GetByUser(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("company profile")
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateMine applies the provided fields to the caller's profile, creating
// it lazily on first update.
func (s *CompanyProfileService) UpdateMine(userID string, req *dtos.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.CompanyProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Website != nil {
		profile.Website = req.Website
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		profile.ContactPhone = req.ContactPhone
	}
	if req.About != nil {
		profile.About = req.About
	}

	if err := s.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
