// File: internal/api/contact.go
package api

// swagger:model api.ContactRequest
type ContactRequest struct {
	Name    string  `json:"name" validate:"required" example:"Juan"`
	Email   string  `json:"email" validate:"required,email" example:"juan@example.com"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Service *string `json:"service" example:"payroll-outsourcing"`
	Message string  `json:"message" validate:"required"`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// swagger:model api.UploadResponse
type UploadResponse struct {
	PublicURL string `json:"publicUrl" example:"/uploads/1715000000_logo.png"`
}
