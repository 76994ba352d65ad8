package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hopee-platform/hopee-backend/internal/authz"
	"github.com/hopee-platform/hopee-backend/internal/dto"
	"github.com/hopee-platform/hopee-backend/internal/models"
	"github.com/hopee-platform/hopee-backend/internal/store"
)

func TestContactAnonymousSubmit(t *testing.T) {
	require := require.New(t)
	svc := NewContactService(newTestDB(t))

	msg, err := svc.Create(nil, &dto.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "The map on the report page does not load.",
		Type:    "bug_report",
	})
	require.NoError(err)
	require.Equal(models.ContactNew, msg.Status)
	require.Equal(models.ContactBugReport, msg.Type)
}

func TestContactTriageAdminOnly(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	svc := NewContactService(db)

	reporter := principalFor(seedUser(t, db, "reporter@example.com", models.RoleUser))
	admin := principalFor(seedUser(t, db, "admin@example.com", models.RoleAdmin))

	msg, err := svc.Create(reporter, &dto.ContactRequest{
		Name:    "Reporter",
		Email:   "reporter@example.com",
		Message: "How do I follow up on a case?",
	})
	require.NoError(err)

	var fe *authz.ForbiddenError
	_, err = svc.List(reporter, "", store.ListOptions{})
	require.ErrorAs(err, &fe)
	_, err = svc.UpdateStatus(reporter, msg.ID, models.ContactResolved)
	require.ErrorAs(err, &fe)

	inbox, err := svc.List(admin, models.ContactNew, store.ListOptions{})
	require.NoError(err)
	require.Len(inbox, 1)

	resolved, err := svc.UpdateStatus(admin, msg.ID, models.ContactResolved)
	require.NoError(err)
	require.Equal(models.ContactResolved, resolved.Status)

	inbox, err = svc.List(admin, models.ContactNew, store.ListOptions{})
	require.NoError(err)
	require.Empty(inbox)
}
