package dtos

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type UpdateRolesRequest struct {
	Roles []string `json:"roles" binding:"required"`
}

type LockUserRequest struct {
	Lock *bool `json:"lock" binding:"required"`
}

type UserResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	FullName   string   `json:"full_name"`
	Roles      []string `json:"roles"`
	ResumePath string   `json:"resume_path,omitempty"`
	Locked     bool     `json:"locked"`
}
