package dtos

type CreateReportRequest struct {
	TargetType string  `json:"target_type" binding:"required"`
	TargetID   string  `json:"target_id" binding:"required"`
	Reason     string  `json:"reason" binding:"required"`
	Details    *string `json:"details"`
}

type UpdateReportStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note"`
}
