package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type CompanyRequestHandler struct {
	RequestService *services.CompanyRequestService
}

func NewCompanyRequestHandler(r *services.CompanyRequestService) *CompanyRequestHandler {
	return &CompanyRequestHandler{
		RequestService: r,
	}
}

func (h *CompanyRequestHandler) Create(c *gin.Context) {
	var req dtos.CreateCompanyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	request, err := h.RequestService.Create(&req, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *CompanyRequestHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)

	var status *models.CompanyRequestStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := models.ParseCompanyRequestStatus(raw)
		if !ok {
			respondProblem(c, http.StatusBadRequest, "Unknown request status")
			return
		}
		status = &parsed
	}

	items, total, err := h.RequestService.List(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

func (h *CompanyRequestHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	request, err := h.RequestService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Decide handles PATCH /company-requests/:id. Approval carries the role
// migration side effect.
func (h *CompanyRequestHandler) Decide(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.DecideCompanyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	request, err := h.RequestService.Decide(id, req.Status, req.Note, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
