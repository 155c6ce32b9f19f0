// Package cli implements the interactive NightOwl shell: account
// registration and sign-in, session inspection, and profile viewing/editing
// on top of the data-access core.
package cli

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/nightowlapp/nightowl/internal/auth"
	"github.com/nightowlapp/nightowl/internal/config"
	"github.com/nightowlapp/nightowl/internal/logging"
	"github.com/nightowlapp/nightowl/internal/profilesync"
	"github.com/nightowlapp/nightowl/internal/query"
	"github.com/nightowlapp/nightowl/internal/repositories/repomanager"
)

type App struct {
	config *config.Config
	svc    *auth.Service
	syncer *profilesync.Syncer
	rm     repomanager.RepositoryManager
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	var (
		rm  repomanager.RepositoryManager
		err error
	)
	if c.StoreDSN == "" {
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		rm, err = repomanager.NewPostgresRepositoryManager(c.StoreDSN)
		if err != nil {
			return nil, err
		}
	}

	svc := auth.NewService(rm, auth.NewSessionStore(), auth.NewBus(logger), c, logger)
	syncer := profilesync.New(svc, query.NewFacade(rm), logger)

	return &App{
		config: c,
		svc:    svc,
		syncer: syncer,
		rm:     rm,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.svc.GetSession() != nil
}

func (a *App) Close() error {
	a.syncer.Close()
	return a.rm.Close()
}
