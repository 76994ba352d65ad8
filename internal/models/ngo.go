package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NGO is a registered organization that claims and resolves cases within its
// declared service areas. Verification is admin-controlled.
type NGO struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string                      `gorm:"size:255;not null" json:"name"`
	Email           string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone           string                      `gorm:"size:30" json:"phone,omitempty"`
	Description     string                      `gorm:"type:text;not null" json:"description"`
	ServiceAreas    datatypes.JSONSlice[string] `json:"service_areas"`
	Specializations datatypes.JSONSlice[string] `json:"specializations"`
	Verified        bool                        `gorm:"not null;default:false" json:"verified"`
	Website         string                      `gorm:"size:500" json:"website,omitempty"`
	LogoURL         string                      `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (NGO) TableName() string {
	return "ngos"
}

// ServesCity reports whether city is an exact member of the NGO's service
// areas. Matching is case-sensitive string equality.
func (n *NGO) ServesCity(city string) bool {
	for _, area := range n.ServiceAreas {
		if area == city {
			return true
		}
	}
	return false
}
