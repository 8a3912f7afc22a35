package bookmarks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and the
// in-memory store mode.
type InMemoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	bookmarks map[int64]*models.Bookmark
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{bookmarks: make(map[int64]*models.Bookmark)}
}

func (r *InMemoryRepository) Create(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()

	stored := *bookmark
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.bookmarks[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookmarks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *b
	return &out, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Bookmark, 0)
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out := *b
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookmarks[bookmark.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	stored.Title = bookmark.Title
	stored.Description = bookmark.Description
	stored.Link = bookmark.Link
	stored.UpdatedAt = time.Now()

	out := *stored
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookmarks, id)
	return nil
}
