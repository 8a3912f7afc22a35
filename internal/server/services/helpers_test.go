package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/users"
)

// failingRepoManager returns repositories whose every call fails with err,
// for exercising unexpected-store-error paths.
type failingRepoManager struct {
	err error
}

func (m *failingRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *failingRepoManager) Users(db dbx.DBTX) users.Repository {
	return &failingUsersRepo{err: m.err}
}

func (m *failingRepoManager) Bookmarks(db dbx.DBTX) bookmarks.Repository {
	return &failingBookmarksRepo{err: m.err}
}

type failingUsersRepo struct{ err error }

func (r *failingUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, r.err
}
func (r *failingUsersRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, r.err
}
func (r *failingUsersRepo) GetUserByID(context.Context, int64) (*models.User, error) {
	return nil, r.err
}
func (r *failingUsersRepo) Update(context.Context, *models.User) (*models.User, error) {
	return nil, r.err
}

type failingBookmarksRepo struct{ err error }

func (r *failingBookmarksRepo) Create(context.Context, *models.Bookmark) (*models.Bookmark, error) {
	return nil, r.err
}
func (r *failingBookmarksRepo) GetByID(context.Context, int64) (*models.Bookmark, error) {
	return nil, r.err
}
func (r *failingBookmarksRepo) ListByUser(context.Context, int64) ([]*models.Bookmark, error) {
	return nil, r.err
}
func (r *failingBookmarksRepo) Update(context.Context, *models.Bookmark) (*models.Bookmark, error) {
	return nil, r.err
}
func (r *failingBookmarksRepo) Delete(context.Context, int64) error { return r.err }
