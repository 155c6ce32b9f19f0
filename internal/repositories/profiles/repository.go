// Package profiles stores the public-facing profile records, keyed by user
// id with a secondary lookup by email.
package profiles

import (
	"context"

	"github.com/nightowlapp/nightowl/internal/models"
)

type Repository interface {
	// GetByID returns the profile with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Profile, error)

	// GetByEmail returns the profile with the given email (case-insensitive),
	// or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)

	// List returns up to limit profiles ordered by creation time ascending.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]models.Profile, error)

	// Upsert inserts the profile, replacing any existing row with the same id.
	Upsert(ctx context.Context, profile *models.Profile) error
}
