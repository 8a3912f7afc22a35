// Package repomanager hands out per-entity repositories bound to a database
// handle or transaction, so services can run multiple repository calls on the
// same dbx.DBTX.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Bookmarks(db dbx.DBTX) bookmarks.Repository
}
