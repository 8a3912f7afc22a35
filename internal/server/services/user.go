package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bookmarkd/internal/server/auth"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/repomanager"
)

// UserPatch carries partial self-profile updates. Nil fields are untouched.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserService reads and updates the authenticated user's own record. The
// target is always identity.UserID, so no ownership check is needed here.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// GetSelf returns the caller's own record. Stripping the hash for external
// representations is the transport layer's job.
func (s *UserService) GetSelf(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// EditSelf applies the patch to the caller's own record and returns the
// updated user. Changing email to one already in use yields
// common.ErrorEmailTaken from the repository.
func (s *UserService) EditSelf(ctx context.Context, identity *auth.Identity, patch *UserPatch) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	return updated, nil
}
