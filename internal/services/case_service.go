package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

// ErrNoNGOProfile means an NGO-scoped operation was attempted by a principal
// without a linked NGO profile.
var ErrNoNGOProfile = errors.New("no NGO profile linked to this account")

type CaseService struct {
	cases *store.CaseStore
	ngos  *store.NGOStore
}

func NewCaseService(db *gorm.DB) *CaseService {
	return &CaseService{
		cases: store.NewCaseStore(db),
		ngos:  store.NewNGOStore(db),
	}
}

// Create submits a new case. Anonymous reporters are allowed but must leave a
// contact phone and email; authenticated reporters are recorded by their
// account email. Status always starts at pending.
func (s *CaseService) Create(p *authz.Principal, req *dto.CreateCaseRequest) (*models.Case, error) {
	if err := authz.Authorize(p, authz.OpCaseCreate, authz.Resource{}); err != nil {
		return nil, err
	}

	createdBy := req.ReporterEmail
	if p != nil {
		createdBy = p.Email
	} else {
		if req.ContactPhone == "" {
			return nil, &store.ValidationError{Field: "contact_phone", Reason: "is required for anonymous reports"}
		}
		if createdBy == "" {
			return nil, &store.ValidationError{Field: "reporter_email", Reason: "is required for anonymous reports"}
		}
	}

	c := models.Case{
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.CaseCategory(req.Category),
		Priority:     models.CasePriority(req.Priority),
		Status:       models.CaseStatusPending,
		Location:     req.Location.ToModel(),
		PhotoURL:     req.PhotoURL,
		ContactPhone: req.ContactPhone,
		CreatedBy:    createdBy,
	}

	if err := s.cases.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns cases matching filter. NGO and admin only.
func (s *CaseService) List(p *authz.Principal, f store.CaseFilter, opts store.ListOptions) ([]models.Case, error) {
	if err := authz.Authorize(p, authz.OpCaseList, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.cases.List(f, opts)
}

// MyCases returns the cases the principal reported.
func (s *CaseService) MyCases(p *authz.Principal) ([]models.Case, error) {
	if p == nil {
		return nil, authz.ErrUnauthenticated
	}
	if err := authz.Authorize(p, authz.OpCaseReadOwn, authz.Resource{OwnerEmail: p.Email}); err != nil {
		return nil, err
	}
	return s.cases.List(store.CaseFilter{CreatedBy: p.Email}, store.ListOptions{})
}

// Get returns a single case. Visible to admins, the reporter who created it,
// and NGOs whose service areas cover the case city.
func (s *CaseService) Get(p *authz.Principal, id uuid.UUID) (*models.Case, error) {
	c, err := s.cases.Get(id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(p, authz.OpCaseReadOwn, authz.Resource{OwnerEmail: c.CreatedBy}); err == nil {
		return c, nil
	}
	if err := authz.Authorize(p, authz.OpCaseList, authz.Resource{}); err != nil {
		return nil, err
	}
	if p.IsNGO() {
		ngo, err := s.ngos.Get(*p.NGOID)
		if err != nil {
			return nil, ErrNoNGOProfile
		}
		if !ngo.ServesCity(c.Location.City) {
			return nil, &authz.ForbiddenError{Op: authz.OpCaseList, Reason: "case is outside your service areas"}
		}
	}
	return c, nil
}

// UpdateStatus transitions a case to newStatus. Any of the three statuses is
// accepted regardless of the current one, so an erroneous resolution can be
// corrected; applying the current status again is a no-op, not an error.
// Resolution notes ride along only when resolving. Reporters are denied.
func (s *CaseService) UpdateStatus(p *authz.Principal, id uuid.UUID, newStatus models.CaseStatus, resolutionNotes string) (*models.Case, error) {
	if err := authz.Authorize(p, authz.OpCaseUpdateStatus, authz.Resource{}); err != nil {
		return nil, err
	}
	if !newStatus.Valid() {
		return nil, &store.ValidationError{Field: "status", Reason: "unknown value " + string(newStatus)}
	}
	if resolutionNotes != "" && newStatus != models.CaseStatusResolved {
		return nil, &store.ValidationError{Field: "resolution_notes", Reason: "may only be set when resolving"}
	}

	patch := store.CasePatch{Status: &newStatus}
	if resolutionNotes != "" {
		patch.ResolutionNotes = &resolutionNotes
	}
	return s.cases.Update(id, patch)
}

// Claim assigns the case to the calling NGO.
func (s *CaseService) Claim(p *authz.Principal, id uuid.UUID) (*models.Case, error) {
	if err := authz.Authorize(p, authz.OpCaseClaim, authz.Resource{}); err != nil {
		return nil, err
	}
	if p.NGOID == nil {
		return nil, ErrNoNGOProfile
	}
	return s.cases.Update(id, store.CasePatch{AssignedNGO: p.NGOID})
}

// Unclaim releases the case assignment.
func (s *CaseService) Unclaim(p *authz.Principal, id uuid.UUID) (*models.Case, error) {
	if err := authz.Authorize(p, authz.OpCaseClaim, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.cases.Update(id, store.CasePatch{ClearAssignment: true})
}

func (s *CaseService) Delete(p *authz.Principal, id uuid.UUID) error {
	if err := authz.Authorize(p, authz.OpCaseDelete, authz.Resource{}); err != nil {
		return err
	}
	return s.cases.Delete(id)
}

// VisibleCasesFor returns exactly the cases whose location city is an exact
// member of the NGO's service areas. Matching is case-sensitive string
// equality; recorded coordinates play no part.
func (s *CaseService) VisibleCasesFor(ngo *models.NGO) ([]models.Case, error) {
	return s.cases.ListByCities(ngo.ServiceAreas)
}

// Dashboard builds the NGO dashboard view: the visible set partitioned into a
// pending bucket (status != resolved) and a resolved bucket, plus counts. The
// partition is a view concern; nothing is persisted.
func (s *CaseService) Dashboard(p *authz.Principal) (*dto.NGODashboardResponse, error) {
	if err := authz.Authorize(p, authz.OpCaseList, authz.Resource{}); err != nil {
		return nil, err
	}
	if p.NGOID == nil {
		return nil, ErrNoNGOProfile
	}

	ngo, err := s.ngos.Get(*p.NGOID)
	if err != nil {
		return nil, ErrNoNGOProfile
	}

	visible, err := s.VisibleCasesFor(ngo)
	if err != nil {
		return nil, fmt.Errorf("failed to load visible cases: %w", err)
	}

	resp := &dto.NGODashboardResponse{
		NGO:      *ngo,
		Pending:  []models.Case{},
		Resolved: []models.Case{},
	}
	for _, c := range visible {
		resp.Stats.Total++
		switch c.Status {
		case models.CaseStatusResolved:
			resp.Stats.Resolved++
			resp.Resolved = append(resp.Resolved, c)
		case models.CaseStatusInProgress:
			resp.Stats.InProgress++
			resp.Pending = append(resp.Pending, c)
		default:
			resp.Stats.Pending++
			resp.Pending = append(resp.Pending, c)
		}
	}
	return resp, nil
}
