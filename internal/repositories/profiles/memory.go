package profiles

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/models"
)

// MemoryRepository keeps profiles in a map keyed by id. Email lookups scan
// the table; with one profile per user the table stays small enough that an
// index is not worth maintaining.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]*models.Profile)}
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(email)
	for _, p := range r.profiles {
		if strings.ToLower(p.Email) == needle {
			return p.Clone(), nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) List(ctx context.Context, limit int) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		result = append(result, *p.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.ID] = profile.Clone()
	return nil
}
