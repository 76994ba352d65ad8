package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

type ContactMessageStore struct {
	db *gorm.DB
}

func NewContactMessageStore(db *gorm.DB) *ContactMessageStore {
	return &ContactMessageStore{db: db}
}

type ContactMessageFilter struct {
	Status models.ContactStatus
	Type   models.ContactType
}

func (f ContactMessageFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	return q
}

func (s *ContactMessageStore) Create(m *models.ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" {
		return required("name")
	}
	if strings.TrimSpace(m.Email) == "" {
		return required("email")
	}
	if strings.TrimSpace(m.Message) == "" {
		return required("message")
	}
	if m.Type == "" {
		m.Type = models.ContactGeneral
	}
	if !m.Type.Valid() {
		return outOfEnum("type", string(m.Type))
	}
	if m.Status == "" {
		m.Status = models.ContactNew
	}
	if !m.Status.Valid() {
		return outOfEnum("status", string(m.Status))
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return s.db.Create(m).Error
}

func (s *ContactMessageStore) List(f ContactMessageFilter, opts ListOptions) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	q := opts.apply(f.apply(s.db.Model(&models.ContactMessage{})), "created_at DESC")
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *ContactMessageStore) Get(id uuid.UUID) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *ContactMessageStore) SetStatus(id uuid.UUID, status models.ContactStatus) (*models.ContactMessage, error) {
	if !status.Valid() {
		return nil, outOfEnum("status", string(status))
	}
	result := s.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}
