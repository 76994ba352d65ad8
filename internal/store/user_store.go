package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(u *models.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return required("email")
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if !u.Role.Valid() {
		return outOfEnum("role", string(u.Role))
	}

	var existing models.User
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return s.db.Create(u).Error
}

func (s *UserStore) Get(id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SetRole changes a user's role, clearing the NGO back-reference when the new
// role is not "ngo".
func (s *UserStore) SetRole(id uuid.UUID, role models.UserRole, ngoID *uuid.UUID) error {
	if !role.Valid() {
		return outOfEnum("role", string(role))
	}
	if role != models.RoleNGO {
		ngoID = nil
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"role": role, "ngo_id": ngoID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
