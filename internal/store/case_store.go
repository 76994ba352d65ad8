package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

type CaseStore struct {
	db *gorm.DB
}

func NewCaseStore(db *gorm.DB) *CaseStore {
	return &CaseStore{db: db}
}

// CaseFilter is an equality filter applied conjunctively. Zero fields are
// ignored.
type CaseFilter struct {
	Status      models.CaseStatus
	Category    models.CaseCategory
	City        string
	CreatedBy   string
	AssignedNGO *uuid.UUID
}

func (f CaseFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.City != "" {
		q = q.Where("location_city = ?", f.City)
	}
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if f.AssignedNGO != nil {
		q = q.Where("assigned_ngo = ?", *f.AssignedNGO)
	}
	return q
}

// CasePatch is a partial update. Nil fields are left untouched; enum fields
// are re-validated when set.
type CasePatch struct {
	Title           *string
	Description     *string
	Category        *models.CaseCategory
	Priority        *models.CasePriority
	Status          *models.CaseStatus
	PhotoURL        *string
	ContactPhone    *string
	AssignedNGO     *uuid.UUID
	ClearAssignment bool
	ResolutionNotes *string
}

func (s *CaseStore) Create(c *models.Case) error {
	if strings.TrimSpace(c.Title) == "" {
		return required("title")
	}
	if strings.TrimSpace(c.Description) == "" {
		return required("description")
	}
	if c.Category == "" {
		return required("category")
	}
	if !c.Category.Valid() {
		return outOfEnum("category", string(c.Category))
	}
	if c.Priority == "" {
		c.Priority = models.PriorityMedium
	}
	if !c.Priority.Valid() {
		return outOfEnum("priority", string(c.Priority))
	}
	if c.Status == "" {
		c.Status = models.CaseStatusPending
	}
	if !c.Status.Valid() {
		return outOfEnum("status", string(c.Status))
	}
	if strings.TrimSpace(c.Location.Address) == "" {
		return required("location.address")
	}
	if strings.TrimSpace(c.CreatedBy) == "" {
		return required("created_by")
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return s.db.Create(c).Error
}

// List returns cases matching filter, newest first by default.
func (s *CaseStore) List(f CaseFilter, opts ListOptions) ([]models.Case, error) {
	var cases []models.Case
	q := opts.apply(f.apply(s.db.Model(&models.Case{})), "created_at DESC")
	if err := q.Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// ListByCities returns cases whose location city is an exact member of
// cities, newest first. An empty city list matches nothing.
func (s *CaseStore) ListByCities(cities []string) ([]models.Case, error) {
	if len(cities) == 0 {
		return []models.Case{}, nil
	}
	var cases []models.Case
	err := s.db.Where("location_city IN ?", cities).
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (s *CaseStore) Get(id uuid.UUID) (*models.Case, error) {
	var c models.Case
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *CaseStore) Update(id uuid.UUID, patch CasePatch) (*models.Case, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, required("title")
		}
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return nil, outOfEnum("category", string(*patch.Category))
		}
		updates["category"] = *patch.Category
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, outOfEnum("priority", string(*patch.Priority))
		}
		updates["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, outOfEnum("status", string(*patch.Status))
		}
		updates["status"] = *patch.Status
	}
	if patch.PhotoURL != nil {
		updates["photo_url"] = *patch.PhotoURL
	}
	if patch.ContactPhone != nil {
		updates["contact_phone"] = *patch.ContactPhone
	}
	if patch.AssignedNGO != nil {
		updates["assigned_ngo"] = *patch.AssignedNGO
	}
	if patch.ClearAssignment {
		updates["assigned_ngo"] = nil
	}
	if patch.ResolutionNotes != nil {
		updates["resolution_notes"] = *patch.ResolutionNotes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Case{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *CaseStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Case{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns case counts keyed by status, optionally restricted to
// the given cities.
func (s *CaseStore) CountByStatus(cities []string) (map[models.CaseStatus]int64, error) {
	type row struct {
		Status models.CaseStatus
		N      int64
	}
	q := s.db.Model(&models.Case{}).Select("status, count(*) as n").Group("status")
	if cities != nil {
		q = q.Where("location_city IN ?", cities)
	}
	var rows []row
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[models.CaseStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}
