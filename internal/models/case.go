package models

import (
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CaseStatusPending    CaseStatus = "pending"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusResolved   CaseStatus = "resolved"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusPending, CaseStatusInProgress, CaseStatusResolved:
		return true
	}
	return false
}

type CasePriority string

const (
	PriorityLow    CasePriority = "low"
	PriorityMedium CasePriority = "medium"
	PriorityHigh   CasePriority = "high"
	PriorityUrgent CasePriority = "urgent"
)

func (p CasePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type CaseCategory string

const (
	CategoryHomeless     CaseCategory = "homeless"
	CategoryMedical      CaseCategory = "medical"
	CategoryElderly      CaseCategory = "elderly"
	CategoryAbandoned    CaseCategory = "abandoned"
	CategoryMentalHealth CaseCategory = "mental_health"
	CategoryFoodSecurity CaseCategory = "food_security"
	CategoryOther        CaseCategory = "other"
)

func (c CaseCategory) Valid() bool {
	switch c {
	case CategoryHomeless, CategoryMedical, CategoryElderly, CategoryAbandoned,
		CategoryMentalHealth, CategoryFoodSecurity, CategoryOther:
		return true
	}
	return false
}

// Location is where a case was reported. Latitude/longitude are stored as
// submitted; no geocoding is performed.
type Location struct {
	Address   string   `gorm:"size:500;not null" json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `gorm:"size:100;index" json:"city"`
	State     string   `gorm:"size:100" json:"state"`
}

// Case is a submitted report of a person needing assistance.
type Case struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string       `gorm:"size:255;not null" json:"title"`
	Description     string       `gorm:"type:text;not null" json:"description"`
	Category        CaseCategory `gorm:"size:30;not null" json:"category"`
	Priority        CasePriority `gorm:"size:20;not null;default:'medium'" json:"priority"`
	Status          CaseStatus   `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Location        Location     `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	PhotoURL        string       `gorm:"size:500" json:"photo_url,omitempty"`
	ContactPhone    string       `gorm:"size:30" json:"contact_phone,omitempty"`
	AssignedNGO     *uuid.UUID   `gorm:"type:uuid;index" json:"assigned_ngo,omitempty"`
	ResolutionNotes string       `gorm:"type:text" json:"resolution_notes,omitempty"`
	CreatedBy       string       `gorm:"size:255;not null;index" json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (Case) TableName() string {
	return "cases"
}
