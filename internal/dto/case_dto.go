package dto

import "github.com/hopee-platform/hopee-backend/internal/models"

type LocationPayload struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `json:"city"`
	State     string   `json:"state"`
}

func (l LocationPayload) ToModel() models.Location {
	return models.Location{
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		City:      l.City,
		State:     l.State,
	}
}

type CreateCaseRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Priority     string          `json:"priority"`
	Location     LocationPayload `json:"location"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	// ReporterEmail identifies anonymous reporters; ignored when the caller
	// is authenticated.
	ReporterEmail string `json:"reporter_email,omitempty"`
}

type UpdateCaseStatusRequest struct {
	Status          string `json:"status"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}

type CaseStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

// NGODashboardResponse partitions the NGO's visible cases into pending
// (anything not resolved) and resolved buckets.
type NGODashboardResponse struct {
	NGO      models.NGO    `json:"ngo"`
	Pending  []models.Case `json:"pending"`
	Resolved []models.Case `json:"resolved"`
	Stats    CaseStats     `json:"stats"`
}
