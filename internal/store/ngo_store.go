package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

type NGOStore struct {
	db *gorm.DB
}

func NewNGOStore(db *gorm.DB) *NGOStore {
	return &NGOStore{db: db}
}

type NGOFilter struct {
	Verified *bool
	Email    string
}

func (f NGOFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Verified != nil {
		q = q.Where("verified = ?", *f.Verified)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	return q
}

type NGOPatch struct {
	Name            *string
	Phone           *string
	Description     *string
	ServiceAreas    *[]string
	Specializations *[]string
	Verified        *bool
	Website         *string
	LogoURL         *string
}

func validSpecializations(specs []string) error {
	for _, sp := range specs {
		if !models.CaseCategory(sp).Valid() {
			return outOfEnum("specializations", sp)
		}
	}
	return nil
}

func (s *NGOStore) Create(n *models.NGO) error {
	if strings.TrimSpace(n.Name) == "" {
		return required("name")
	}
	if strings.TrimSpace(n.Email) == "" {
		return required("email")
	}
	if strings.TrimSpace(n.Description) == "" {
		return required("description")
	}
	if len(n.ServiceAreas) == 0 {
		return required("service_areas")
	}
	if err := validSpecializations(n.Specializations); err != nil {
		return err
	}

	var existing models.NGO
	err := s.db.Where("email = ?", n.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return s.db.Create(n).Error
}

func (s *NGOStore) List(f NGOFilter, opts ListOptions) ([]models.NGO, error) {
	var ngos []models.NGO
	q := opts.apply(f.apply(s.db.Model(&models.NGO{})), "name ASC")
	if err := q.Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (s *NGOStore) Get(id uuid.UUID) (*models.NGO, error) {
	var n models.NGO
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *NGOStore) GetByEmail(email string) (*models.NGO, error) {
	var n models.NGO
	if err := s.db.First(&n, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *NGOStore) Update(id uuid.UUID, patch NGOPatch) (*models.NGO, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, required("name")
		}
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ServiceAreas != nil {
		if len(*patch.ServiceAreas) == 0 {
			return nil, required("service_areas")
		}
		updates["service_areas"] = datatypes.NewJSONSlice(*patch.ServiceAreas)
	}
	if patch.Specializations != nil {
		if err := validSpecializations(*patch.Specializations); err != nil {
			return nil, err
		}
		updates["specializations"] = datatypes.NewJSONSlice(*patch.Specializations)
	}
	if patch.Verified != nil {
		updates["verified"] = *patch.Verified
	}
	if patch.Website != nil {
		updates["website"] = *patch.Website
	}
	if patch.LogoURL != nil {
		updates["logo_url"] = *patch.LogoURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.NGO{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *NGOStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.NGO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NGOStore) Count(f NGOFilter) (int64, error) {
	var n int64
	err := f.apply(s.db.Model(&models.NGO{})).Count(&n).Error
	return n, err
}
