package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

var ErrRequestAlreadyReviewed = errors.New("admin request already reviewed")

type AdminService struct {
	db       *gorm.DB
	requests *store.AdminRequestStore
	cases    *store.CaseStore
	ngos     *store.NGOStore
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{
		db:       db,
		requests: store.NewAdminRequestStore(db),
		cases:    store.NewCaseStore(db),
		ngos:     store.NewNGOStore(db),
	}
}

// CreateRequest files an admin-access petition for the calling user. A second
// request while one is pending fails with store.ErrConflict.
func (s *AdminService) CreateRequest(p *authz.Principal, reason string) (*models.AdminRequest, error) {
	if err := authz.Authorize(p, authz.OpAdminRequestCreate, authz.Resource{}); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", p.UserID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	req := models.AdminRequest{
		UserEmail: p.Email,
		UserName:  user.FullName,
		Reason:    reason,
		Status:    models.AdminRequestPending,
	}
	if req.UserName == "" {
		req.UserName = p.Email
	}
	if err := s.requests.Create(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// MyRequests returns the calling user's own petitions.
func (s *AdminService) MyRequests(p *authz.Principal) ([]models.AdminRequest, error) {
	if p == nil {
		return nil, authz.ErrUnauthenticated
	}
	return s.requests.List(store.AdminRequestFilter{UserEmail: p.Email}, store.ListOptions{})
}

// ListRequests returns petitions for the admin review queue.
func (s *AdminService) ListRequests(p *authz.Principal, status models.AdminRequestStatus) ([]models.AdminRequest, error) {
	if err := authz.Authorize(p, authz.OpAdminRequestReview, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.requests.List(store.AdminRequestFilter{Status: status}, store.ListOptions{})
}

// Review approves or rejects a pending petition. Approval promotes the
// requesting user to admin in the same transaction, so the approved state and
// the actual privilege can never diverge.
func (s *AdminService) Review(p *authz.Principal, id uuid.UUID, approve bool) (*models.AdminRequest, error) {
	if err := authz.Authorize(p, authz.OpAdminRequestReview, authz.Resource{}); err != nil {
		return nil, err
	}

	req, err := s.requests.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.AdminRequestPending {
		return nil, ErrRequestAlreadyReviewed
	}

	newStatus := models.AdminRequestRejected
	if approve {
		newStatus = models.AdminRequestApproved
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := store.NewAdminRequestStore(tx).SetStatus(id, newStatus); err != nil {
			return err
		}
		if !approve {
			return nil
		}
		user, err := store.NewUserStore(tx).GetByEmail(req.UserEmail)
		if err != nil {
			return err
		}
		return store.NewUserStore(tx).SetRole(user.ID, models.RoleAdmin, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.requests.Get(id)
}

// PlatformStats aggregates counts across all cases and NGOs for the admin
// dashboard.
func (s *AdminService) PlatformStats(p *authz.Principal) (*dto.PlatformStats, error) {
	if err := authz.Authorize(p, authz.OpStatsRead, authz.Resource{}); err != nil {
		return nil, err
	}

	byStatus, err := s.cases.CountByStatus(nil)
	if err != nil {
		return nil, err
	}

	totalNGOs, err := s.ngos.Count(store.NGOFilter{})
	if err != nil {
		return nil, err
	}
	unverified := false
	pendingNGOs, err := s.ngos.Count(store.NGOFilter{Verified: &unverified})
	if err != nil {
		return nil, err
	}

	stats := &dto.PlatformStats{
		TotalNGOs:     totalNGOs,
		PendingNGOs:   pendingNGOs,
		PendingCases:  byStatus[models.CaseStatusPending],
		ResolvedCases: byStatus[models.CaseStatusResolved],
	}
	for _, n := range byStatus {
		stats.TotalCases += n
	}
	return stats, nil
}
