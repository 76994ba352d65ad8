package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

type AdminRequestStore struct {
	db *gorm.DB
}

func NewAdminRequestStore(db *gorm.DB) *AdminRequestStore {
	return &AdminRequestStore{db: db}
}

type AdminRequestFilter struct {
	Status    models.AdminRequestStatus
	UserEmail string
}

func (f AdminRequestFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserEmail != "" {
		q = q.Where("user_email = ?", f.UserEmail)
	}
	return q
}

// Create persists a new admin request. One pending request per email: a
// second create while one is pending fails with ErrConflict.
func (s *AdminRequestStore) Create(r *models.AdminRequest) error {
	if strings.TrimSpace(r.UserEmail) == "" {
		return required("user_email")
	}
	if strings.TrimSpace(r.UserName) == "" {
		return required("user_name")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return required("reason")
	}
	if r.Status == "" {
		r.Status = models.AdminRequestPending
	}
	if !r.Status.Valid() {
		return outOfEnum("status", string(r.Status))
	}

	// There is no DB uniqueness constraint backing the one-pending rule, so a
	// failed read here must not be mistaken for "no pending request".
	var existing models.AdminRequest
	err := s.db.Where("user_email = ? AND status = ?", r.UserEmail, models.AdminRequestPending).
		First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return s.db.Create(r).Error
}

func (s *AdminRequestStore) List(f AdminRequestFilter, opts ListOptions) ([]models.AdminRequest, error) {
	var reqs []models.AdminRequest
	q := opts.apply(f.apply(s.db.Model(&models.AdminRequest{})), "created_at DESC")
	if err := q.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *AdminRequestStore) Get(id uuid.UUID) (*models.AdminRequest, error) {
	var r models.AdminRequest
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *AdminRequestStore) SetStatus(id uuid.UUID, status models.AdminRequestStatus) (*models.AdminRequest, error) {
	if !status.Valid() {
		return nil, outOfEnum("status", string(status))
	}
	result := s.db.Model(&models.AdminRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}
