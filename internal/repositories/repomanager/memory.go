package repomanager

import (
	"context"
	"database/sql"

	"github.com/nightowlapp/nightowl/internal/repositories/profiles"
	"github.com/nightowlapp/nightowl/internal/repositories/users"
)

type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	profiles *profiles.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		profiles: profiles.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *MemoryRepositoryManager) Profiles() profiles.Repository { return m.profiles }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(users.Repository, profiles.Repository) error) error {
	return fn(m.users, m.profiles)
}

func (m *MemoryRepositoryManager) Close() error { return nil }
