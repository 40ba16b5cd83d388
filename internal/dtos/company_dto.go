package dtos

type CreateCompanyRequestRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Website     *string `json:"website"`
	Message     *string `json:"message"`
}

type DecideCompanyRequestRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note"`
}

type UpdateCompanyProfileRequest struct {
	Name         *string `json:"name"`
	Website      *string `json:"website"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	About        *string `json:"about"`
}
