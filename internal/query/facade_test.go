package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowlapp/nightowl/internal/models"
	"github.com/nightowlapp/nightowl/internal/repositories/repomanager"
)

func newFacade(t *testing.T) *Facade {
	t.Helper()
	return NewFacade(repomanager.NewMemoryRepositoryManager())
}

func seedProfile(t *testing.T, f *Facade, id, email string) *models.Profile {
	t.Helper()
	p := &models.Profile{ID: id, Email: email, FullName: "Someone", Nickname: "some"}
	require.NoError(t, f.InsertProfile(context.Background(), p))
	return p
}

func TestSingleProfile_ByIDAndEmail(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	seedProfile(t, f, "p1", "a@b.com")

	byID, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)

	byEmail, err := f.SingleProfile(ctx, ByEmail("A@B.COM"))
	require.NoError(t, err)
	assert.Equal(t, "p1", byEmail.ID)
}

func TestSingleProfile_NotFound(t *testing.T) {
	f := newFacade(t)

	_, err := f.SingleProfile(context.Background(), ByID("ghost"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var qe *Error
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, CodeNotFound, qe.Code)
}

func TestInsertProfile_StampsTimestamps(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	require.NoError(t, f.InsertProfile(ctx, &models.Profile{ID: "p1", Email: "a@b.com"}))

	got, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestInsertProfile_OverwritesOnSameID(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	seedProfile(t, f, "p1", "a@b.com")

	require.NoError(t, f.InsertProfile(ctx, &models.Profile{ID: "p1", Email: "a@b.com", FullName: "Replaced"}))

	got, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)
	assert.Equal(t, "Replaced", got.FullName)
}

func TestUpdateProfile_MergesAndStampsUpdatedAt(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	seedProfile(t, f, "p1", "a@b.com")

	before, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)

	bio := "night person"
	require.NoError(t, f.UpdateProfile(ctx, ByID("p1"), ProfilePatch{Bio: &bio}))

	after, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)
	require.NotNil(t, after.Bio)
	assert.Equal(t, "night person", *after.Bio)
	// untouched fields survive the merge
	assert.Equal(t, "Someone", after.FullName)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at must strictly increase")
}

func TestUpdateProfile_IdempotentPatch(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	seedProfile(t, f, "p1", "a@b.com")

	bio := "x"
	require.NoError(t, f.UpdateProfile(ctx, ByID("p1"), ProfilePatch{Bio: &bio}))
	first, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)

	require.NoError(t, f.UpdateProfile(ctx, ByID("p1"), ProfilePatch{Bio: &bio}))
	second, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)

	assert.Equal(t, *first.Bio, *second.Bio)
	assert.Equal(t, first.FullName, second.FullName)
}

func TestUpdateProfile_NoMatchIsNoop(t *testing.T) {
	f := newFacade(t)

	bio := "x"
	err := f.UpdateProfile(context.Background(), ByID("ghost"), ProfilePatch{Bio: &bio})
	assert.NoError(t, err)
}

func TestUpdateProfile_MonotonicEvenWithFrozenClock(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	seedProfile(t, f, "p1", "a@b.com")

	frozen := time.Now()
	f.now = func() time.Time { return frozen }

	bio := "x"
	require.NoError(t, f.UpdateProfile(ctx, ByID("p1"), ProfilePatch{Bio: &bio}))
	first, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)

	require.NoError(t, f.UpdateProfile(ctx, ByID("p1"), ProfilePatch{Bio: &bio}))
	second, err := f.SingleProfile(ctx, ByID("p1"))
	require.NoError(t, err)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestListProfiles_OrderedWithLimit(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		seedProfile(t, f, id, id+"@b.com")
		time.Sleep(time.Millisecond)
	}

	two, err := f.ListProfiles(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "p1", two[0].ID)
	assert.Equal(t, "p2", two[1].ID)
}

func TestTableAndColumnNames(t *testing.T) {
	assert.Equal(t, "users", TableUsers.String())
	assert.Equal(t, "profiles", TableProfiles.String())
	assert.Equal(t, "unknown", Table(0).String())
	assert.Equal(t, "id", ColID.String())
	assert.Equal(t, "email", ColEmail.String())
}

func TestPatchIsZero(t *testing.T) {
	assert.True(t, ProfilePatch{}.IsZero())
	v := "x"
	assert.False(t, ProfilePatch{Location: &v}.IsZero())
}
