package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}
