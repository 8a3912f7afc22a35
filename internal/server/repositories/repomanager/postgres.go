package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/migrations"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Bookmarks(db dbx.DBTX) bookmarks.Repository {
	return bookmarks.NewPostgresRepository(db)
}
