package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and the
// in-memory store mode. It enforces the same email uniqueness rule as the
// Postgres schema.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[int64]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrorEmailTaken
		}
	}

	r.nextID++
	now := time.Now()

	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return nil, common.ErrorEmailTaken
		}
	}

	stored.Email = user.Email
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.UpdatedAt = time.Now()

	out := *stored
	return &out, nil
}
