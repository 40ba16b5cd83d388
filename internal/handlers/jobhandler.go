package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		JobService: j,
	}
}

// List is the public GET /jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	query := services.JobListQuery{
		Q:        c.Query("q"),
		Location: c.Query("location"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("category"); raw != "" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			respondProblem(c, http.StatusBadRequest, "Unknown category")
			return
		}
		query.Category = &category
	}

	items, total, err := h.JobService.List(query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	// Anonymous callers have an empty identity; the service treats them as
	// unprivileged and hides unapproved jobs.
	ident, _ := auth.IdentityFrom(c)
	job, err := h.JobService.GetByID(id, ident.UserID, ident.IsAdmin())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	job, err := h.JobService.Create(&req, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	job, err := h.JobService.Update(id, &req, ident.UserID, ident.IsAdmin())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Archive handles DELETE /jobs/:id as a soft delete.
func (h *JobHandler) Archive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	ident, _ := auth.IdentityFrom(c)
	if err := h.JobService.Archive(id, ident.UserID, ident.IsAdmin()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) Moderate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.ModerateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.JobService.Moderate(id, *req.Approved, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListPending(c *gin.Context) {
	page, pageSize := pageParams(c)
	items, total, err := h.JobService.ListPending(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	ident, _ := auth.IdentityFrom(c)
	items, total, err := h.JobService.ListMine(ident.UserID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}
