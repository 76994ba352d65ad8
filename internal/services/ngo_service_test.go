package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

func registerNGORequest(email string) *dto.RegisterNGORequest {
	return &dto.RegisterNGORequest{
		Name:            "Helping Hands Foundation",
		Email:           email,
		Description:     "Shelter and food support.",
		ServiceAreas:    []string{"Mumbai", "Delhi"},
		Specializations: []string{"homeless", "food_security"},
	}
}

func TestRegisterNGOLinksUser(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewNGOService(db)

	user := seedUser(t, db, "founder@example.com", models.RoleUser)
	ngo, err := svc.Register(principalFor(user), registerNGORequest("org@example.com"))
	require.NoError(err)
	require.False(ngo.Verified)

	var linked models.User
	require.NoError(db.First(&linked, "id = ?", user.ID).Error)
	require.Equal(models.RoleNGO, linked.Role)
	require.NotNil(linked.NGOID)
	require.Equal(ngo.ID, *linked.NGOID)
}

func TestRegisterNGODuplicateEmailRollsBack(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewNGOService(db)

	first := seedUser(t, db, "a@example.com", models.RoleUser)
	_, err := svc.Register(principalFor(first), registerNGORequest("org@example.com"))
	require.NoError(err)

	second := seedUser(t, db, "b@example.com", models.RoleUser)
	_, err = svc.Register(principalFor(second), registerNGORequest("org@example.com"))
	require.ErrorIs(err, store.ErrConflict)

	// The second user keeps its original role.
	var u models.User
	require.NoError(db.First(&u, "id = ?", second.ID).Error)
	require.Equal(models.RoleUser, u.Role)
	require.Nil(u.NGOID)
}

func TestRegisterNGORequiresAuth(t *testing.T) {
	require := require.New(t)
	svc := NewNGOService(newTestDB(t))

	_, err := svc.Register(nil, registerNGORequest("org@example.com"))
	require.ErrorIs(err, authz.ErrUnauthenticated)
}

func TestUpdateProfileOwnership(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewNGOService(db)

	ownerP, ngo := ngoAccount(t, db, "org@example.com", "Mumbai")
	strangerP, _ := ngoAccount(t, db, "other@example.com", "Delhi")
	adminP := principalFor(seedUser(t, db, "admin@example.com", models.RoleAdmin))

	name := "Helping Hands Trust"
	updated, err := svc.UpdateProfile(ownerP, ngo.ID, &dto.UpdateNGORequest{Name: &name})
	require.NoError(err)
	require.Equal(name, updated.Name)

	var fe *authz.ForbiddenError
	_, err = svc.UpdateProfile(strangerP, ngo.ID, &dto.UpdateNGORequest{Name: &name})
	require.ErrorAs(err, &fe)

	website := "https://helpinghands.example"
	updated, err = svc.UpdateProfile(adminP, ngo.ID, &dto.UpdateNGORequest{Website: &website})
	require.NoError(err)
	require.Equal(website, updated.Website)
}

func TestSetVerifiedAdminOnly(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewNGOService(db)

	ownerP, ngo := ngoAccount(t, db, "org@example.com", "Mumbai")
	adminP := principalFor(seedUser(t, db, "admin@example.com", models.RoleAdmin))

	var fe *authz.ForbiddenError
	_, err := svc.SetVerified(ownerP, ngo.ID, true)
	require.ErrorAs(err, &fe)

	verified, err := svc.SetVerified(adminP, ngo.ID, true)
	require.NoError(err)
	require.True(verified.Verified)

	// Revocation flips the flag back; case visibility is unaffected by
	// design (it depends only on service areas).
	revoked, err := svc.SetVerified(adminP, ngo.ID, false)
	require.NoError(err)
	require.False(revoked.Verified)
}

func TestNGODirectoryFilters(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewNGOService(db)

	_, a := ngoAccount(t, db, "a@example.com", "Mumbai")
	ngoAccount(t, db, "b@example.com", "Delhi")

	adminP := principalFor(seedUser(t, db, "admin@example.com", models.RoleAdmin))
	_, err := svc.SetVerified(adminP, a.ID, true)
	require.NoError(err)

	verified, err := svc.List(true, store.ListOptions{})
	require.NoError(err)
	require.Len(verified, 1)
	require.Equal(a.ID, verified[0].ID)

	byCity, err := svc.ByServiceArea("Delhi")
	require.NoError(err)
	require.Len(byCity, 1)

	require.NoError(db.Model(&models.NGO{}).Where("id = ?", a.ID).
		Update("specializations", datatypes.NewJSONSlice([]string{"medical"})).Error)
	bySpec, err := svc.BySpecialization(models.CategoryMedical)
	require.NoError(err)
	require.Len(bySpec, 1)
	require.Equal(a.ID, bySpec[0].ID)

	_, err = svc.BySpecialization(models.CaseCategory("astrology"))
	var ve *store.ValidationError
	require.ErrorAs(err, &ve)
}
