package models

import (
	"time"

	"github.com/google/uuid"
)

type AdminRequestStatus string

const (
	AdminRequestPending  AdminRequestStatus = "pending"
	AdminRequestApproved AdminRequestStatus = "approved"
	AdminRequestRejected AdminRequestStatus = "rejected"
)

func (s AdminRequestStatus) Valid() bool {
	switch s {
	case AdminRequestPending, AdminRequestApproved, AdminRequestRejected:
		return true
	}
	return false
}

// AdminRequest is a user-initiated petition for admin privileges. Approval
// promotes the user's role in the same transaction.
type AdminRequest struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail string             `gorm:"size:255;not null;index" json:"user_email"`
	UserName  string             `gorm:"size:255;not null" json:"user_name"`
	Reason    string             `gorm:"type:text;not null" json:"reason"`
	Status    AdminRequestStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (AdminRequest) TableName() string {
	return "admin_requests"
}
