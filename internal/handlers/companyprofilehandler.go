package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type CompanyProfileHandler struct {
	ProfileService *services.CompanyProfileService
}

func NewCompanyProfileHandler(p *services.CompanyProfileService) *CompanyProfileHandler {
	return &CompanyProfileHandler{
		ProfileService: p,
	}
}

// GetMine returns the caller's profile, or an empty default when none has
// been created yet.
func (h *CompanyProfileHandler) GetMine(c *gin.Context) {
	ident, _ := auth.IdentityFrom(c)
	profile, err := h.ProfileService.GetByUser(ident.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusOK, models.CompanyProfile{UserID: ident.UserID})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *CompanyProfileHandler) UpdateMine(c *gin.Context) {
	var req dtos.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	profile, err := h.ProfileService.UpdateMine(ident.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublic looks up a company profile by its owner's user id. Visible to
// any authenticated caller.
func (h *CompanyProfileHandler) GetPublic(c *gin.Context) {
	profile, err := h.ProfileService.GetByUser(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
