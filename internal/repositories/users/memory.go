package users

import (
	"context"
	"strings"
	"sync"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/models"
)

// MemoryRepository keeps users in a map keyed by lower-cased email. It is the
// reference backend: process-lifetime only, safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; ok {
		return nil, common.ErrAlreadyExists
	}

	stored := *user
	r.users[key] = &stored

	return user, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrNotFound
	}

	out := *user
	return &out, nil
}
