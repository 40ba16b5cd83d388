package dtos

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`

	// Optional Fields
	SalaryMin *int `json:"salary_min"`
	SalaryMax *int `json:"salary_max"`
}

type UpdateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	SalaryMin   *int   `json:"salary_min"`
	SalaryMax   *int   `json:"salary_max"`
}

type ModerateJobRequest struct {
	Approved *bool   `json:"approved" binding:"required"`
	Reason   *string `json:"reason"`
}
