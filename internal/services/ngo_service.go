package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

// ErrAlreadyNGO means the user already has an NGO profile linked.
var ErrAlreadyNGO = errors.New("account already has an NGO profile")

type NGOService struct {
	db   *gorm.DB
	ngos *store.NGOStore
}

func NewNGOService(db *gorm.DB) *NGOService {
	return &NGOService{db: db, ngos: store.NewNGOStore(db)}
}

// Register creates an NGO profile and links it to the calling user in one
// transaction: the user's role becomes "ngo" and the profile id is stored as
// a back-reference on the user. The NGO starts unverified.
func (s *NGOService) Register(p *authz.Principal, req *dto.RegisterNGORequest) (*models.NGO, error) {
	if p == nil {
		return nil, authz.ErrUnauthenticated
	}
	if p.NGOID != nil {
		return nil, ErrAlreadyNGO
	}

	ngo := models.NGO{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Description:     req.Description,
		ServiceAreas:    datatypes.NewJSONSlice(req.ServiceAreas),
		Specializations: datatypes.NewJSONSlice(req.Specializations),
		Verified:        false,
		Website:         req.Website,
		LogoURL:         req.LogoURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := store.NewNGOStore(tx).Create(&ngo); err != nil {
			return err
		}
		return store.NewUserStore(tx).SetRole(p.UserID, models.RoleNGO, &ngo.ID)
	})
	if err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (s *NGOService) Get(id uuid.UUID) (*models.NGO, error) {
	return s.ngos.Get(id)
}

// List returns NGOs, optionally restricted to verified ones.
func (s *NGOService) List(verifiedOnly bool, opts store.ListOptions) ([]models.NGO, error) {
	f := store.NGOFilter{}
	if verifiedOnly {
		v := true
		f.Verified = &v
	}
	return s.ngos.List(f, opts)
}

// ByServiceArea returns NGOs declaring the given city as a service area.
func (s *NGOService) ByServiceArea(city string) ([]models.NGO, error) {
	all, err := s.ngos.List(store.NGOFilter{}, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	matched := []models.NGO{}
	for _, n := range all {
		if n.ServesCity(city) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// BySpecialization returns NGOs listing the given case category as a
// specialization.
func (s *NGOService) BySpecialization(spec models.CaseCategory) ([]models.NGO, error) {
	if !spec.Valid() {
		return nil, &store.ValidationError{Field: "specialization", Reason: "unknown value " + string(spec)}
	}
	all, err := s.ngos.List(store.NGOFilter{}, store.ListOptions{})
	if err != nil {
		return nil, err
	}
	matched := []models.NGO{}
	for _, n := range all {
		for _, sp := range n.Specializations {
			if sp == string(spec) {
				matched = append(matched, n)
				break
			}
		}
	}
	return matched, nil
}

// UpdateProfile edits an NGO profile. Owner or admin. The verified flag is
// not touchable here; see SetVerified.
func (s *NGOService) UpdateProfile(p *authz.Principal, id uuid.UUID, req *dto.UpdateNGORequest) (*models.NGO, error) {
	if err := authz.Authorize(p, authz.OpNGOUpdate, authz.Resource{NGOID: &id}); err != nil {
		return nil, err
	}

	return s.ngos.Update(id, store.NGOPatch{
		Name:            req.Name,
		Phone:           req.Phone,
		Description:     req.Description,
		ServiceAreas:    req.ServiceAreas,
		Specializations: req.Specializations,
		Website:         req.Website,
		LogoURL:         req.LogoURL,
	})
}

// SetVerified flips the admin-controlled verification flag. Revoking
// verification does not hide previously matched cases; visibility depends
// only on service areas.
func (s *NGOService) SetVerified(p *authz.Principal, id uuid.UUID, verified bool) (*models.NGO, error) {
	if err := authz.Authorize(p, authz.OpNGOVerify, authz.Resource{}); err != nil {
		return nil, err
	}
	ngo, err := s.ngos.Update(id, store.NGOPatch{Verified: &verified})
	if err != nil {
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}
	return ngo, nil
}
