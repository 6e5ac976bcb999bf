package model

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ContactResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	BusinessEmailID string `json:"businessEmailId"`
	CustomerEmailID string `json:"customerEmailId"`
}
