package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactType string

const (
	ContactGeneral        ContactType = "general"
	ContactBugReport      ContactType = "bug_report"
	ContactFeatureRequest ContactType = "feature_request"
	ContactSupport        ContactType = "support"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactGeneral, ContactBugReport, ContactFeatureRequest, ContactSupport:
		return true
	}
	return false
}

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactInReview ContactStatus = "in_review"
	ContactResolved ContactStatus = "resolved"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactNew, ContactInReview, ContactResolved:
		return true
	}
	return false
}

// ContactMessage is a support-inbox record. No workflow beyond status tagging.
type ContactMessage struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string        `gorm:"size:255;not null" json:"name"`
	Email     string        `gorm:"size:255;not null" json:"email"`
	Subject   string        `gorm:"size:255" json:"subject,omitempty"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Type      ContactType   `gorm:"size:30;not null;default:'general'" json:"type"`
	Status    ContactStatus `gorm:"size:20;not null;default:'new';index" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
