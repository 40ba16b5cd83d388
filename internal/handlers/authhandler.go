package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	Tokens      *auth.TokenIssuer
}

func NewAuthHandler(u *services.UserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		UserService: u,
		Tokens:      tokens,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.UserService.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, expiresIn, err := h.Tokens.Issue(user.ID, user.Email, user.RoleNames())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.LoginResponse{Token: token, ExpiresIn: expiresIn})
}

// Me returns the authenticated account with its current role set.
func (h *AuthHandler) Me(c *gin.Context) {
	ident, _ := auth.IdentityFrom(c)
	user, err := h.UserService.GetByID(ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Roles:      user.RoleNames(),
		ResumePath: user.ResumePath,
		Locked:     user.Locked,
	})
}
