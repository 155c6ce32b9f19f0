// Package repomanager wires the per-table repositories to a storage backend.
// Two backends exist: in-memory (reference, always available) and PostgreSQL.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/nightowlapp/nightowl/internal/repositories/profiles"
	"github.com/nightowlapp/nightowl/internal/repositories/users"
)

// RepositoryManager hands out repositories bound to the configured backend.
type RepositoryManager interface {
	// RunMigrations brings the backing schema up to date. No-op for the
	// in-memory backend.
	RunMigrations(ctx context.Context) error

	// Conn exposes the raw database handle, nil for the in-memory backend.
	Conn() *sql.DB

	Users() users.Repository
	Profiles() profiles.Repository

	// WithinTx runs fn with repositories scoped to a single transaction,
	// committing on success and rolling back on error. The in-memory backend
	// runs fn directly; its single-map writes are atomic already.
	WithinTx(ctx context.Context, fn func(users.Repository, profiles.Repository) error) error

	Close() error
}
