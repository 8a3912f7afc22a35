package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/dbx"
	"github.com/dmitrijs2005/bookmarkd/internal/server/auth"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/repomanager"
)

// BookmarkCreate is the input for creating a bookmark. Description may be empty.
type BookmarkCreate struct {
	Title       string
	Description string
	Link        string
}

// BookmarkPatch carries partial bookmark updates. Nil fields are untouched.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

// BookmarkService provides CRUD over bookmarks scoped to the owning user.
//
// Read-by-id treats a foreign user's bookmark as absent (common.ErrorNotFound).
// Update and Delete conflate "absent" and "not owned" into
// common.ErrorForbidden, checked before any mutation, so neither case leaks
// whether the record exists.
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

// List returns every bookmark owned by the caller, empty slice if none.
func (s *BookmarkService) List(ctx context.Context, identity *auth.Identity) ([]*models.Bookmark, error) {
	repo := s.repomanager.Bookmarks(s.db)

	result, err := repo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}

	return result, nil
}

// GetByID returns the bookmark only if it exists and the caller owns it.
func (s *BookmarkService) GetByID(ctx context.Context, identity *auth.Identity, bookmarkID int64) (*models.Bookmark, error) {
	repo := s.repomanager.Bookmarks(s.db)

	b, err := repo.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading bookmark: %w", err)
	}
	if b.UserID != identity.UserID {
		return nil, common.ErrorNotFound
	}

	return b, nil
}

// Create persists a new bookmark owned by the caller and returns it with the
// generated id.
func (s *BookmarkService) Create(ctx context.Context, identity *auth.Identity, input *BookmarkCreate) (*models.Bookmark, error) {
	repo := s.repomanager.Bookmarks(s.db)

	b, err := repo.Create(ctx, &models.Bookmark{
		UserID:      identity.UserID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}

	return b, nil
}

// Update applies the patch to the caller's bookmark. The ownership check and
// the write run in one transaction so the bookmark cannot change hands in
// between.
func (s *BookmarkService) Update(ctx context.Context, identity *auth.Identity, bookmarkID int64, patch *BookmarkPatch) (*models.Bookmark, error) {
	var updated *models.Bookmark

	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bookmarks(tx)

		b, err := s.getOwned(ctx, repo, identity, bookmarkID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Description != nil {
			b.Description = *patch.Description
		}
		if patch.Link != nil {
			b.Link = *patch.Link
		}

		updated, err = repo.Update(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the caller's bookmark permanently.
func (s *BookmarkService) Delete(ctx context.Context, identity *auth.Identity, bookmarkID int64) error {
	return s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Bookmarks(tx)

		if _, err := s.getOwned(ctx, repo, identity, bookmarkID); err != nil {
			return err
		}

		return repo.Delete(ctx, bookmarkID)
	})
}

// getOwned fetches a bookmark and verifies ownership, mapping both "absent"
// and "not owned" to common.ErrorForbidden.
func (s *BookmarkService) getOwned(ctx context.Context, repo bookmarks.Repository, identity *auth.Identity, bookmarkID int64) (*models.Bookmark, error) {
	b, err := repo.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("error loading bookmark: %w", err)
	}
	if b.UserID != identity.UserID {
		return nil, common.ErrorForbidden
	}

	return b, nil
}

// withTx runs fn inside a transaction when a real database is attached; the
// in-memory store has no transactions, so fn runs directly.
func (s *BookmarkService) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}
