package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type ReportHandler struct {
	ReportService *services.ReportService
}

func NewReportHandler(r *services.ReportService) *ReportHandler {
	return &ReportHandler{
		ReportService: r,
	}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req dtos.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	report, err := h.ReportService.Create(&req, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)

	var status *models.ReportStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := models.ParseReportStatus(raw)
		if !ok {
			respondProblem(c, http.StatusBadRequest, "Unknown report status")
			return
		}
		status = &parsed
	}
	var targetType *models.ReportTargetType
	if raw := c.Query("targetType"); raw != "" {
		parsed, ok := models.ParseReportTargetType(raw)
		if !ok {
			respondProblem(c, http.StatusBadRequest, "Unknown report target type")
			return
		}
		targetType = &parsed
	}

	items, total, err := h.ReportService.List(status, targetType, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, page, pageSize)
}

func (h *ReportHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	report, err := h.ReportService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondProblem(c, http.StatusNotFound, "Not found")
		return
	}
	var req dtos.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ident, _ := auth.IdentityFrom(c)
	report, err := h.ReportService.UpdateStatus(id, req.Status, req.Note, ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
