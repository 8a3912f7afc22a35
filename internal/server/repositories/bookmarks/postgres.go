package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {

	query :=
		`INSERT INTO bookmarks (user_id, title, description, link)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link).
		Scan(&bookmark.ID, &bookmark.CreatedAt, &bookmark.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, description, link, created_at, updated_at FROM bookmarks
		 WHERE id = $1
		 `

	b := &models.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	query :=
		`SELECT id, user_id, title, description, link, created_at, updated_at FROM bookmarks
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Bookmark, 0)
	for rows.Next() {
		b := &models.Bookmark{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	query :=
		`UPDATE bookmarks
		 SET title = $1, description = $2, link = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		bookmark.Title, bookmark.Description, bookmark.Link, bookmark.ID).
		Scan(&bookmark.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return bookmark, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookmarks WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
