package bookmarks

import (
	"context"

	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	GetByID(ctx context.Context, id int64) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}
