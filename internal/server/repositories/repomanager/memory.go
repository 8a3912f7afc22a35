package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the same repositories regardless of the
// handle passed in, since there is no real database underneath. State lives
// for the lifetime of the manager.
type InMemoryRepositoryManager struct {
	users     *users.InMemoryRepository
	bookmarks *bookmarks.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:     users.NewInMemoryRepository(),
		bookmarks: bookmarks.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Bookmarks(db dbx.DBTX) bookmarks.Repository {
	return m.bookmarks
}
