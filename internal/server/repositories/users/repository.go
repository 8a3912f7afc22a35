package users

import (
	"context"

	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}
