package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

type ContactService struct {
	messages *store.ContactMessageStore
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{messages: store.NewContactMessageStore(db)}
}

// Create files a support message. Open to anonymous visitors.
func (s *ContactService) Create(p *authz.Principal, req *dto.ContactRequest) (*models.ContactMessage, error) {
	if err := authz.Authorize(p, authz.OpContactCreate, authz.Resource{}); err != nil {
		return nil, err
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Type:    models.ContactType(req.Type),
		Status:  models.ContactNew,
	}
	if err := s.messages.Create(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns the support inbox. Admin only.
func (s *ContactService) List(p *authz.Principal, status models.ContactStatus, opts store.ListOptions) ([]models.ContactMessage, error) {
	if err := authz.Authorize(p, authz.OpContactTriage, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.messages.List(store.ContactMessageFilter{Status: status}, opts)
}

// UpdateStatus tags a message as new, in_review or resolved. Admin only.
func (s *ContactService) UpdateStatus(p *authz.Principal, id uuid.UUID, status models.ContactStatus) (*models.ContactMessage, error) {
	if err := authz.Authorize(p, authz.OpContactTriage, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.messages.SetStatus(id, status)
}
