package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

func TestAdminRequestStoreOnePendingPerEmail(t *testing.T) {
	require := require.New(t)
	requests := NewAdminRequestStore(newTestDB(t))

	first := &models.AdminRequest{
		UserEmail: "user@example.com",
		UserName:  "Asha",
		Reason:    "I coordinate three shelters and need the review queue.",
	}
	require.NoError(requests.Create(first))
	require.Equal(models.AdminRequestPending, first.Status)

	second := &models.AdminRequest{
		UserEmail: "user@example.com",
		UserName:  "Asha",
		Reason:    "Second attempt",
	}
	require.ErrorIs(requests.Create(second), ErrConflict)

	// After the first is reviewed a new request is allowed again.
	_, err := requests.SetStatus(first.ID, models.AdminRequestRejected)
	require.NoError(err)
	require.NoError(requests.Create(second))
}

func TestAdminRequestStoreCreateReadFailurePropagates(t *testing.T) {
	require := require.New(t)
	db := newTestDB(t)
	requests := NewAdminRequestStore(db)

	sqlDB, err := db.DB()
	require.NoError(err)
	require.NoError(sqlDB.Close())

	// When the pending-request lookup cannot be answered, the create must
	// fail outright rather than assume no pending request exists.
	err = requests.Create(&models.AdminRequest{
		UserEmail: "user@example.com",
		UserName:  "Asha",
		Reason:    "first request",
	})
	require.Error(err)
	require.NotErrorIs(err, ErrConflict)
}

func TestAdminRequestStoreValidation(t *testing.T) {
	require := require.New(t)
	requests := NewAdminRequestStore(newTestDB(t))

	err := requests.Create(&models.AdminRequest{UserEmail: "a@b.c", UserName: "A"})
	var ve *ValidationError
	require.ErrorAs(err, &ve)
	require.Equal("reason", ve.Field)

	_, err = requests.SetStatus(uuid.New(), models.AdminRequestStatus("stalled"))
	require.ErrorAs(err, &ve)
	require.Equal("status", ve.Field)
}

func TestContactMessageStore(t *testing.T) {
	require := require.New(t)
	messages := NewContactMessageStore(newTestDB(t))

	msg := &models.ContactMessage{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Message: "The report form rejects my photo.",
		Type:    models.ContactBugReport,
	}
	require.NoError(messages.Create(msg))
	require.Equal(models.ContactNew, msg.Status)

	got, err := messages.SetStatus(msg.ID, models.ContactInReview)
	require.NoError(err)
	require.Equal(models.ContactInReview, got.Status)

	inReview, err := messages.List(ContactMessageFilter{Status: models.ContactInReview}, ListOptions{})
	require.NoError(err)
	require.Len(inReview, 1)

	err = messages.Create(&models.ContactMessage{Name: "X", Email: "x@y.z", Message: "hi", Type: "complaint"})
	var ve *ValidationError
	require.ErrorAs(err, &ve)
	require.Equal("type", ve.Field)
}
