package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/server/auth"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/repomanager"
)

func newBookmarkFixture(t *testing.T) (*BookmarkService, *auth.Identity, *auth.Identity) {
	t.Helper()
	rm := repomanager.NewInMemoryRepositoryManager()
	s := NewBookmarkService(nil, rm)
	a := seedUser(t, rm, "a@x.com")
	b := seedUser(t, rm, "b@x.com")
	return s, a, b
}

func TestCreateAndGetByID_RoundTrip(t *testing.T) {
	s, owner, _ := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x", Description: "d"})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Equal(t, owner.UserID, created.UserID)

	got, err := s.GetByID(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "T", got.Title)
	require.Equal(t, "https://x", got.Link)
	require.Equal(t, "d", got.Description)
}

func TestList_FreshAccountIsEmpty(t *testing.T) {
	s, owner, _ := newBookmarkFixture(t)

	got, err := s.List(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestOwnership_OtherUserIsRejectedEverywhere(t *testing.T) {
	s, owner, other := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x"})
	require.NoError(t, err)

	_, err = s.GetByID(ctx, other, created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound, "read-by-id must behave as not-found for foreign bookmarks")

	_, err = s.Update(ctx, other, created.ID, &BookmarkPatch{Title: str("hijack")})
	require.ErrorIs(t, err, common.ErrorForbidden)

	err = s.Delete(ctx, other, created.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)

	list, err := s.List(ctx, other)
	require.NoError(t, err)
	require.Empty(t, list, "foreign bookmarks must not appear in list")

	// the owner is unaffected by the failed attempts
	got, err := s.GetByID(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "T", got.Title)
}

func TestUpdate_AbsentAndForeignLookAlike(t *testing.T) {
	s, owner, other := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x"})
	require.NoError(t, err)

	_, errForeign := s.Update(ctx, other, created.ID, &BookmarkPatch{})
	_, errAbsent := s.Update(ctx, owner, created.ID+1000, &BookmarkPatch{})

	require.ErrorIs(t, errForeign, common.ErrorForbidden)
	require.ErrorIs(t, errAbsent, common.ErrorForbidden)
}

func TestUpdate_PartialPatch(t *testing.T) {
	s, owner, _ := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x", Description: "d"})
	require.NoError(t, err)

	got, err := s.Update(ctx, owner, created.ID, &BookmarkPatch{Title: str("T2")})
	require.NoError(t, err)
	require.Equal(t, "T2", got.Title)
	require.Equal(t, "https://x", got.Link, "unpatched fields must survive")
	require.Equal(t, "d", got.Description)
}

func TestDelete_RemovesFromList(t *testing.T) {
	s, owner, _ := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x"})
	require.NoError(t, err)

	list, err := s.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "T", list[0].Title)

	require.NoError(t, s.Delete(ctx, owner, created.ID))

	list, err = s.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)

	// deleting again conflates "absent" with "not owned"
	err = s.Delete(ctx, owner, created.ID)
	require.ErrorIs(t, err, common.ErrorForbidden)
}

func TestList_StoreErrorPropagates(t *testing.T) {
	rm := &failingRepoManager{err: errors.New("connection refused")}
	s := NewBookmarkService(nil, rm)

	_, err := s.List(context.Background(), &auth.Identity{UserID: 1})
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorForbidden)
}

func TestGetByID_OwnerSeesOwnRecordFields(t *testing.T) {
	s, owner, _ := newBookmarkFixture(t)
	ctx := context.Background()

	created, err := s.Create(ctx, owner, &BookmarkCreate{Title: "T", Link: "https://x"})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, &models.Bookmark{
		ID:          created.ID,
		UserID:      owner.UserID,
		Title:       "T",
		Description: "",
		Link:        "https://x",
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, got)
}
