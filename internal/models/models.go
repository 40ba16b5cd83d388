package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-"`
	// Opaque filename of the user's uploaded résumé, empty until first upload.
	ResumePath string `json:"resume_path,omitempty"`
	Locked     bool   `gorm:"default:false" json:"locked"`

	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

// RoleNames flattens the association for claims and responses.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	SalaryMin   *int     `json:"salary_min"`
	SalaryMax   *int     `json:"salary_max"`
	Category    Category `gorm:"size:50" json:"category"`

	PostedAt time.Time `json:"posted_at"`
	// Foreign key to the owning Company user.
	CompanyID        string  `gorm:"index;size:64" json:"company_id"`
	Approved         bool    `gorm:"default:false" json:"approved"`
	ModerationReason *string `json:"moderation_reason,omitempty"`
	IsArchived       bool    `gorm:"default:false" json:"is_archived"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Applications -> Job -> ...
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"index" json:"job_id"`
	// Association: GORM needs Preload() to fill this
	Job Job `json:"-"`

	UserID    string            `gorm:"index;size:64" json:"user_id"`
	ResumeID  *string           `json:"resume_id"`
	AppliedAt time.Time         `json:"applied_at"`
	Status    ApplicationStatus `gorm:"size:20;default:'Received'" json:"status"`
}

type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TargetType ReportTargetType `gorm:"size:20" json:"target_type"`
	TargetID   string           `gorm:"size:100" json:"target_id"`
	Reason     string           `gorm:"size:200" json:"reason"`
	Details    *string          `gorm:"type:text" json:"details"`

	CreatedByUserID string       `gorm:"size:64" json:"created_by_user_id"`
	Status          ReportStatus `gorm:"size:20;default:'Open'" json:"status"`

	ResolvedAt     *time.Time `json:"resolved_at"`
	ResolverUserID *string    `gorm:"size:64" json:"resolver_user_id"`
	ResolutionNote *string    `json:"resolution_note"`
}

type CompanyRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string  `gorm:"index;size:64" json:"user_id"`
	CompanyName string  `gorm:"size:150" json:"company_name"`
	Website     *string `gorm:"size:200" json:"website"`
	Message     *string `gorm:"size:500" json:"message"`

	Status          CompanyRequestStatus `gorm:"size:20;default:'Pending'" json:"status"`
	DecidedAt       *time.Time           `json:"decided_at"`
	DecidedByUserID *string              `gorm:"size:64" json:"decided_by_user_id"`
	DecisionNote    *string              `json:"decision_note"`
}

type CompanyProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owner (Company user); one profile per user, created lazily.
	UserID       string  `gorm:"uniqueIndex;size:64" json:"user_id"`
	Name         string  `gorm:"size:150" json:"name"`
	Website      *string `gorm:"size:200" json:"website"`
	ContactEmail *string `gorm:"size:100" json:"contact_email"`
	ContactPhone *string `gorm:"size:50" json:"contact_phone"`
	About        *string `gorm:"type:text" json:"about"`
}
