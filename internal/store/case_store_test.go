package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

func TestCaseStoreCreateDefaults(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	c := validCase()
	c.Priority = ""
	c.Status = ""
	require.NoError(cases.Create(c))

	require.NotEqual(uuid.Nil, c.ID)
	require.Equal(models.CaseStatusPending, c.Status)
	require.Equal(models.PriorityMedium, c.Priority)

	got, err := cases.Get(c.ID)
	require.NoError(err)
	require.Equal("Mumbai", got.Location.City)
	require.True(got.Status.Valid())
	require.True(got.Priority.Valid())
	require.True(got.Category.Valid())
}

func TestCaseStoreListSortAndSkip(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		c := validCase()
		c.Title = title
		c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(cases.Create(c))
	}

	// Default sort is newest first.
	got, err := cases.List(CaseFilter{}, ListOptions{})
	require.NoError(err)
	require.Len(got, 3)
	require.Equal("third", got[0].Title)

	// A caller-supplied sort reverses the order.
	got, err = cases.List(CaseFilter{}, ListOptions{Sort: "created_at ASC"})
	require.NoError(err)
	require.Equal("first", got[0].Title)
	require.Equal("third", got[2].Title)

	// Skip+Limit paginate within the sorted order.
	got, err = cases.List(CaseFilter{}, ListOptions{Sort: "created_at ASC", Skip: 1, Limit: 1})
	require.NoError(err)
	require.Len(got, 1)
	require.Equal("second", got[0].Title)
}

func TestCaseStoreCreateValidation(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	missingTitle := validCase()
	missingTitle.Title = "   "
	err := cases.Create(missingTitle)
	var ve *ValidationError
	require.ErrorAs(err, &ve)
	require.Equal("title", ve.Field)

	badCategory := validCase()
	badCategory.Category = "earthquake"
	err = cases.Create(badCategory)
	require.ErrorAs(err, &ve)
	require.Equal("category", ve.Field)

	badPriority := validCase()
	badPriority.Priority = "asap"
	err = cases.Create(badPriority)
	require.ErrorAs(err, &ve)
	require.Equal("priority", ve.Field)

	// Nothing was persisted by the failed creates.
	all, err := cases.List(CaseFilter{}, ListOptions{})
	require.NoError(err)
	require.Empty(all)
}

func TestCaseStoreListFilters(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	a := validCase()
	require.NoError(cases.Create(a))

	b := validCase()
	b.Title = "Homeless family needs shelter"
	b.Category = models.CategoryHomeless
	b.Location.City = "Delhi"
	b.CreatedBy = "other@example.com"
	require.NoError(cases.Create(b))

	byCity, err := cases.List(CaseFilter{City: "Mumbai"}, ListOptions{})
	require.NoError(err)
	require.Len(byCity, 1)
	require.Equal(a.ID, byCity[0].ID)

	byOwner, err := cases.List(CaseFilter{CreatedBy: "other@example.com"}, ListOptions{})
	require.NoError(err)
	require.Len(byOwner, 1)
	require.Equal(b.ID, byOwner[0].ID)

	byBoth, err := cases.List(CaseFilter{City: "Delhi", Category: models.CategoryElderly}, ListOptions{})
	require.NoError(err)
	require.Empty(byBoth)

	limited, err := cases.List(CaseFilter{}, ListOptions{Limit: 1})
	require.NoError(err)
	require.Len(limited, 1)
}

func TestCaseStoreListByCities(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	mumbai := validCase()
	require.NoError(cases.Create(mumbai))
	delhi := validCase()
	delhi.Location.City = "Delhi"
	require.NoError(cases.Create(delhi))
	pune := validCase()
	pune.Location.City = "Pune"
	require.NoError(cases.Create(pune))

	got, err := cases.ListByCities([]string{"Mumbai", "Delhi"})
	require.NoError(err)
	require.Len(got, 2)
	for _, c := range got {
		require.Contains([]string{"Mumbai", "Delhi"}, c.Location.City)
	}

	// Matching is exact and case-sensitive.
	got, err = cases.ListByCities([]string{"mumbai"})
	require.NoError(err)
	require.Empty(got)

	got, err = cases.ListByCities(nil)
	require.NoError(err)
	require.Empty(got)
}

func TestCaseStoreUpdate(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	c := validCase()
	require.NoError(cases.Create(c))

	resolved := models.CaseStatusResolved
	notes := "Connected with a local shelter."
	got, err := cases.Update(c.ID, CasePatch{Status: &resolved, ResolutionNotes: &notes})
	require.NoError(err)
	require.Equal(models.CaseStatusResolved, got.Status)
	require.Equal(notes, got.ResolutionNotes)

	bad := models.CaseStatus("archived")
	_, err = cases.Update(c.ID, CasePatch{Status: &bad})
	var ve *ValidationError
	require.ErrorAs(err, &ve)
	require.Equal("status", ve.Field)

	_, err = cases.Update(uuid.New(), CasePatch{Status: &resolved})
	require.ErrorIs(err, ErrNotFound)
}

func TestCaseStoreAssignment(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	c := validCase()
	require.NoError(cases.Create(c))

	ngoID := uuid.New()
	got, err := cases.Update(c.ID, CasePatch{AssignedNGO: &ngoID})
	require.NoError(err)
	require.NotNil(got.AssignedNGO)
	require.Equal(ngoID, *got.AssignedNGO)

	got, err = cases.Update(c.ID, CasePatch{ClearAssignment: true})
	require.NoError(err)
	require.Nil(got.AssignedNGO)
}

func TestCaseStoreDelete(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	c := validCase()
	require.NoError(cases.Create(c))
	require.NoError(cases.Delete(c.ID))

	_, err := cases.Get(c.ID)
	require.ErrorIs(err, ErrNotFound)
	require.ErrorIs(cases.Delete(c.ID), ErrNotFound)
}

func TestCaseStoreCountByStatus(t *testing.T) {
	require := require.New(t)
	cases := NewCaseStore(newTestDB(t))

	for i := 0; i < 3; i++ {
		require.NoError(cases.Create(validCase()))
	}
	resolvedCase := validCase()
	resolvedCase.Status = models.CaseStatusResolved
	require.NoError(cases.Create(resolvedCase))

	counts, err := cases.CountByStatus(nil)
	require.NoError(err)
	require.EqualValues(3, counts[models.CaseStatusPending])
	require.EqualValues(1, counts[models.CaseStatusResolved])
}
