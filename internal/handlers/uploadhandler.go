package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

type UploadHandler struct {
	Store              *storage.ResumeStore
	UserService        *services.UserService
	ApplicationService *services.ApplicationService
}

func NewUploadHandler(store *storage.ResumeStore, u *services.UserService, a *services.ApplicationService) *UploadHandler {
	return &UploadHandler{
		Store:              store,
		UserService:        u,
		ApplicationService: a,
	}
}

// Upload stores the caller's résumé (PDF, max 5 MB) under a generated
// filename and records it on the account. One file per user: a new upload
// replaces the reference.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondProblem(c, http.StatusBadRequest, "A file is required")
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		respondProblem(c, http.StatusBadRequest, "Could not read the uploaded file")
		return
	}
	defer src.Close()

	filename, err := h.Store.Save(fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		respondError(c, err)
		return
	}

	ident, _ := auth.IdentityFrom(c)
	if err := h.UserService.SetResumePath(ident.UserID, filename); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename})
}

// Download serves a stored résumé to its owner, an admin, or a company that
// received an application referencing it.
func (h *UploadHandler) Download(c *gin.Context) {
	filename := c.Param("file")
	allowed, err := h.canAccess(c, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		respondProblem(c, http.StatusForbidden, "Not permitted")
		return
	}
	meta, err := h.Store.Stat(filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(h.Store.Path(filename), meta.Filename)
}

// Meta returns size and upload time, gated by the same access rule as the
// file itself.
func (h *UploadHandler) Meta(c *gin.Context) {
	filename := c.Param("file")
	allowed, err := h.canAccess(c, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	if !allowed {
		respondProblem(c, http.StatusForbidden, "Not permitted")
		return
	}
	meta, err := h.Store.Stat(filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func (h *UploadHandler) canAccess(c *gin.Context, filename string) (bool, error) {
	ident, _ := auth.IdentityFrom(c)
	if ident.IsAdmin() {
		return true, nil
	}
	user, err := h.UserService.GetByID(ident.UserID)
	if err != nil {
		return false, err
	}
	if user.ResumePath == filename {
		return true, nil
	}
	return h.ApplicationService.ResumeVisibleToCompany(filename, ident.UserID)
}
