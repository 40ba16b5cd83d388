package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
	}
}

// Apply handles POST /jobs/:id/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	application, err := h.ApplicationService.Apply(jobID, ident.UserID, req.ResumeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListMine handles GET /applications/me.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	ident, _ := auth.IdentityFrom(c)
	items, total, err := h.ApplicationService.ListForApplicant(ident.UserID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

// ListForJob handles GET /jobs/:id/applications.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	page, pageSize := pageParams(c)
	ident, _ := auth.IdentityFrom(c)
	items, total, err := h.ApplicationService.ListForJob(jobID, page, pageSize, ident.UserID, ident.IsAdmin())
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

// UpdateStatus handles PATCH /applications/:id.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	application, err := h.ApplicationService.UpdateStatus(id, req.Status, ident.UserID, ident.IsAdmin())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
