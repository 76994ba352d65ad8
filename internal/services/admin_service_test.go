package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

func TestCreateRequestOnePendingPerUser(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewAdminService(db)

	user := seedUser(t, db, "hopeful@example.com", models.RoleUser)
	req, err := svc.CreateRequest(principalFor(user), "I moderate the local volunteer group")
	require.NoError(err)
	require.Equal(models.AdminRequestPending, req.Status)
	require.Equal(user.Email, req.UserEmail)

	_, err = svc.CreateRequest(principalFor(user), "asking again")
	require.ErrorIs(err, store.ErrConflict)

	mine, err := svc.MyRequests(principalFor(user))
	require.NoError(err)
	require.Len(mine, 1)
}

func TestReviewApprovePromotesUser(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewAdminService(db)

	user := seedUser(t, db, "hopeful@example.com", models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	req, err := svc.CreateRequest(principalFor(user), "long-time volunteer")
	require.NoError(err)

	reviewed, err := svc.Review(principalFor(admin), req.ID, true)
	require.NoError(err)
	require.Equal(models.AdminRequestApproved, reviewed.Status)

	var promoted models.User
	require.NoError(db.First(&promoted, "id = ?", user.ID).Error)
	require.Equal(models.RoleAdmin, promoted.Role)

	// A decided request is final.
	_, err = svc.Review(principalFor(admin), req.ID, false)
	require.ErrorIs(err, ErrRequestAlreadyReviewed)

	// Admins have nothing left to request.
	var fe *authz.ForbiddenError
	_, err = svc.CreateRequest(principalFor(&promoted), "again")
	require.ErrorAs(err, &fe)
}

func TestReviewRejectLeavesRoleAlone(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewAdminService(db)

	user := seedUser(t, db, "hopeful@example.com", models.RoleUser)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	req, err := svc.CreateRequest(principalFor(user), "please")
	require.NoError(err)

	reviewed, err := svc.Review(principalFor(admin), req.ID, false)
	require.NoError(err)
	require.Equal(models.AdminRequestRejected, reviewed.Status)

	var u models.User
	require.NoError(db.First(&u, "id = ?", user.ID).Error)
	require.Equal(models.RoleUser, u.Role)
}

func TestReviewRequiresAdmin(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewAdminService(db)

	user := seedUser(t, db, "hopeful@example.com", models.RoleUser)
	req, err := svc.CreateRequest(principalFor(user), "please")
	require.NoError(err)

	var fe *authz.ForbiddenError
	_, err = svc.Review(principalFor(user), req.ID, true)
	require.ErrorAs(err, &fe)

	_, err = svc.ListRequests(principalFor(user), models.AdminRequestPending)
	require.ErrorAs(err, &fe)
}

func TestPlatformStats(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewAdminService(db)
	caseSvc := NewCaseService(db)

	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	reporter := seedUser(t, db, "reporter@example.com", models.RoleUser)

	ngoAccount(t, db, "org@example.com", "Mumbai")

	c1, err := caseSvc.Create(principalFor(reporter), caseRequest("Mumbai"))
	require.NoError(err)
	_, err = caseSvc.Create(principalFor(reporter), caseRequest("Delhi"))
	require.NoError(err)

	_, err = caseSvc.UpdateStatus(principalFor(admin), c1.ID, models.CaseStatusResolved, "housed")
	require.NoError(err)

	stats, err := svc.PlatformStats(principalFor(admin))
	require.NoError(err)
	require.Equal(int64(2), stats.TotalCases)
	require.Equal(int64(1), stats.PendingCases)
	require.Equal(int64(1), stats.ResolvedCases)
	require.Equal(int64(1), stats.TotalNGOs)
	require.Equal(int64(1), stats.PendingNGOs)

	_, err = svc.PlatformStats(principalFor(reporter))
	var fe *authz.ForbiddenError
	require.ErrorAs(err, &fe)
}
