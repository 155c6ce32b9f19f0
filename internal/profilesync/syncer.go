// Package profilesync keeps a local view of the signed-in user's profile in
// step with the record store. It mirrors what a profile screen needs:
// loading/err state, fetch-by-id with an email fallback, optimistic updates,
// and a reset whenever the session goes away.
package profilesync

import (
	"context"
	"errors"
	"sync"

	"github.com/nightowlapp/nightowl/internal/auth"
	"github.com/nightowlapp/nightowl/internal/logging"
	"github.com/nightowlapp/nightowl/internal/models"
	"github.com/nightowlapp/nightowl/internal/query"
)

// User-facing messages surfaced through State.Error. Fetch failures never
// propagate as faults to the consumer.
const (
	MsgProfileNotFound = "Profile not found"
	MsgFetchFailed     = "Could not fetch profile data"
)

// ErrNoProfile is returned by Update when no profile is loaded.
var ErrNoProfile = errors.New("no profile loaded")

// State is the consumer-facing snapshot. Exactly one of Loading, Profile,
// Error is meaningful at a time; all three zero values mean "signed out".
type State struct {
	Loading bool
	Profile *models.Profile
	Error   string
}

// Syncer tracks the current session's profile. It subscribes to the auth
// event bus on construction; Close unsubscribes. A fetch that completes
// after Close, after sign-out, or after a newer fetch started is discarded
// rather than applied (stale-response guard).
type Syncer struct {
	facade *query.Facade
	logger logging.Logger

	mu     sync.Mutex
	state  State
	userID string
	email  string
	gen    uint64
	closed bool

	unsubscribe func()
	baseCtx     context.Context
}

// New builds a Syncer bound to the service's event bus. If a session is
// already active, the profile fetch starts immediately.
func New(svc *auth.Service, facade *query.Facade, logger logging.Logger) *Syncer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Syncer{
		facade:  facade,
		logger:  logger,
		baseCtx: context.Background(),
	}
	s.unsubscribe = svc.Bus().Subscribe(s.onAuthEvent)

	if sess := svc.GetSession(); sess != nil {
		s.mu.Lock()
		s.userID, s.email = sess.User.ID, sess.User.Email
		s.mu.Unlock()
		s.fetch(s.baseCtx)
	}

	return s
}

// Snapshot returns the current state. The contained profile is a copy.
func (s *Syncer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Profile = s.state.Profile.Clone()
	return out
}

// Refetch re-runs the fetch-by-id path unconditionally. Without an active
// session there is nothing to fetch and the call is a no-op.
func (s *Syncer) Refetch(ctx context.Context) {
	s.mu.Lock()
	none := s.userID == ""
	s.mu.Unlock()
	if none {
		return
	}
	s.fetch(ctx)
}

// Update writes the patch through the façade keyed by the loaded profile's
// id and, on success, merges it into the local profile optimistically
// without a refetch. On failure the local state is left untouched and the
// error is returned.
func (s *Syncer) Update(ctx context.Context, patch query.ProfilePatch) error {
	s.mu.Lock()
	current := s.state.Profile.Clone()
	s.mu.Unlock()

	if current == nil {
		return ErrNoProfile
	}

	if err := s.facade.UpdateProfile(ctx, query.ByID(current.ID), patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state.Profile == nil || s.state.Profile.ID != current.ID {
		return nil
	}
	patch.Apply(s.state.Profile)
	return nil
}

// Close unsubscribes from the auth bus and freezes the syncer. Safe to call
// more than once.
func (s *Syncer) Close() {
	s.mu.Lock()
	s.closed = true
	s.gen++ // invalidate any in-flight fetch
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (s *Syncer) onAuthEvent(event auth.Event, session *models.Session) {
	switch event {
	case auth.EventSignedIn, auth.EventSignedUp:
		if session == nil {
			return
		}
		s.mu.Lock()
		s.userID, s.email = session.User.ID, session.User.Email
		s.mu.Unlock()
		s.fetch(s.baseCtx)
	case auth.EventSignedOut:
		s.mu.Lock()
		s.userID, s.email = "", ""
		s.gen++
		s.state = State{}
		s.mu.Unlock()
	}
}

// fetch resolves the profile by id, falling back to email when the id has no
// row yet. The generation counter taken before the façade calls guards
// against applying a result that a newer fetch, sign-out, or Close has made
// stale.
func (s *Syncer) fetch(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	userID, email := s.userID, s.email
	s.gen++
	gen := s.gen
	s.state = State{Loading: true}
	s.mu.Unlock()

	profile, err := s.facade.SingleProfile(ctx, query.ByID(userID))
	if err != nil && query.IsNotFound(err) && email != "" {
		profile, err = s.facade.SingleProfile(ctx, query.ByEmail(email))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}

	switch {
	case err == nil:
		s.state = State{Profile: profile}
	case query.IsNotFound(err):
		s.state = State{Error: MsgProfileNotFound}
	default:
		s.logger.Error(ctx, "profile fetch failed", "user_id", userID, "error", err)
		s.state = State{Error: MsgFetchFailed}
	}
}
