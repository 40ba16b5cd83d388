package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(u *services.UserService) *UserHandler {
	return &UserHandler{
		UserService: u,
	}
}

func userResponse(user *models.User) dtos.UserResponse {
	return dtos.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Roles:      user.RoleNames(),
		ResumePath: user.ResumePath,
		Locked:     user.Locked,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	ident, _ := auth.IdentityFrom(c)
	user, err := h.UserService.GetByID(ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	user, err := h.UserService.UpdateProfile(ident.UserID, req.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dtos.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	if err := h.UserService.ChangePassword(ident.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List is the admin account overview, optionally filtered by role.
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	users, total, err := h.UserService.List(c.Query("role"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dtos.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	respondList(c, items, total, page, pageSize)
}

func (h *UserHandler) UpdateRoles(c *gin.Context) {
	var req dtos.UpdateRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	if err := h.UserService.UpdateRoles(c.Param("id"), req.Roles, ident.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) SetLock(c *gin.Context) {
	var req dtos.LockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	if err := h.UserService.SetLock(c.Param("id"), *req.Lock, ident.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
