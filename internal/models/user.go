package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleNGO   UserRole = "ngo"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleNGO, RoleAdmin:
		return true
	}
	return false
}

// User is an account principal. NGOID is set only when Role is "ngo" and
// back-references the NGO profile the user created.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Role      UserRole       `gorm:"size:20;not null;default:'user'" json:"role"`
	NGOID     *uuid.UUID     `gorm:"type:uuid" json:"ngo_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
