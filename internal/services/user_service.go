package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		DB: db,
	}
}

// Register creates an account with the JobSeeker role.
func (s *UserService) Register(email, password, fullName string) (*models.User, error) {
	var existing int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		var seeker models.Role
		if err := tx.Where(models.Role{Name: models.RoleJobSeeker}).FirstOrCreate(&seeker).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Roles").Append(&seeker)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials. Bad email and bad password fail the same
// way; a locked account is refused outright.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Roles").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.BadRequest("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.BadRequest("invalid credentials")
	}
	if user.Locked {
		return nil, apperr.Forbidden("account locked")
	}
	return &user, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Roles").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(id string, fullName *string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fullName != nil && *fullName != "" {
		user.FullName = *fullName
		if err := s.DB.Save(user).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *UserService) ChangePassword(id, currentPassword, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return apperr.BadRequest("current password is incorrect")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.DB.Save(user).Error
}

// List returns accounts for the admin view, optionally filtered by role.
func (s *UserService) List(role string, page, pageSize int) ([]models.User, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	query := s.DB.Model(&models.User{}).Preload("Roles")
	if role != "" {
		query = query.
			Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.name = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []models.User
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

// UpdateRoles replaces a user's role set. Admins cannot edit themselves.
func (s *UserService) UpdateRoles(id string, roles []string, actorID string) error {
	if id == actorID {
		return apperr.Forbidden("cannot change own roles")
	}
	for _, name := range roles {
		if name != models.RoleAdmin && name != models.RoleCompany && name != models.RoleJobSeeker {
			return apperr.BadRequest("unknown role")
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Preload("Roles").First(&user, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user")
		}
		if err != nil {
			return err
		}

		replacement := make([]models.Role, 0, len(roles))
		for _, name := range roles {
			var r models.Role
			if err := tx.Where(models.Role{Name: name}).FirstOrCreate(&r).Error; err != nil {
				return err
			}
			replacement = append(replacement, r)
		}
		return tx.Model(&user).Association("Roles").Replace(replacement)
	})
}

// SetLock locks or unlocks an account. Admins cannot lock themselves.
func (s *UserService) SetLock(id string, lock bool, actorID string) error {
	if id == actorID {
		return apperr.Forbidden("cannot lock own account")
	}
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("user")
	}
	if err != nil {
		return err
	}
	user.Locked = lock
	return s.DB.Save(&user).Error
}

// SetResumePath records the opaque filename of the user's uploaded résumé.
func (s *UserService) SetResumePath(id, filename string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	user.ResumePath = filename
	return s.DB.Save(user).Error
}
