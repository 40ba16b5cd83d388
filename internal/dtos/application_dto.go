package dtos

type ApplyRequest struct {
	// Optional override; defaults to the caller's uploaded résumé.
	ResumeID *string `json:"resume_id"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
