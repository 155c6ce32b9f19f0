// Package users stores identity records keyed by email. Email comparison is
// case-insensitive everywhere: two registrations differing only in case are
// the same account.
package users

import (
	"context"

	"github.com/nightowlapp/nightowl/internal/models"
)

type Repository interface {
	// Create inserts a new user. Returns common.ErrAlreadyExists if a user
	// with the same email (case-insensitive) is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by email, case-insensitively.
	// Returns common.ErrNotFound on a miss.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
