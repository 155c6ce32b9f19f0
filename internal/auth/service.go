package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/config"
	"github.com/nightowlapp/nightowl/internal/logging"
	"github.com/nightowlapp/nightowl/internal/models"
	"github.com/nightowlapp/nightowl/internal/repositories/profiles"
	"github.com/nightowlapp/nightowl/internal/repositories/repomanager"
	"github.com/nightowlapp/nightowl/internal/repositories/users"
)

// Service provides the authentication operations:
//   - SignIn: verify credentials and install a session
//   - SignUp: create user + profile atomically and install a session
//   - SignOut: clear the session of record
//   - GetSession: read the session of record without side effects
//
// Expected failures (bad credentials, duplicate email) come back as sentinel
// errors from internal/common; session state is never mutated on failure.
type Service struct {
	rm                  repomanager.RepositoryManager
	sessions            *SessionStore
	bus                 *Bus
	logger              logging.Logger
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

// NewService constructs a Service using repositories and config.
func NewService(rm repomanager.RepositoryManager, sessions *SessionStore, bus *Bus, cfg *config.Config, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		rm:                  rm,
		sessions:            sessions,
		bus:                 bus,
		logger:              logger,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// SignIn verifies the email/password pair case-insensitively on email. On
// success the new session replaces any existing one and EventSignedIn is
// emitted. On failure the current session is left untouched.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := s.rm.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "sign-in lookup failed", "error", err)
		return nil, common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	session, err := s.newSession(user)
	if err != nil {
		return nil, common.ErrInternal
	}

	s.sessions.Replace(session)
	s.bus.Emit(EventSignedIn, session.Clone())
	s.logger.Info(ctx, "session installed", "user_id", user.ID)

	return session, nil
}

// SignUp registers a new account. The user and its profile are created in
// one transaction: a duplicate email leaves neither record behind and
// returns common.ErrEmailAlreadyInUse. On success a session is installed and
// EventSignedUp is emitted.
func (s *Service) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hash error: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     metadata,
		CreatedAt:    now,
	}
	profile := defaultProfile(user, now)

	err = s.rm.WithinTx(ctx, func(ur users.Repository, pr profiles.Repository) error {
		if _, err := ur.Create(ctx, user); err != nil {
			return err
		}
		return pr.Upsert(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrEmailAlreadyInUse
		}
		s.logger.Error(ctx, "sign-up failed", "error", err)
		return nil, common.ErrInternal
	}

	session, err := s.newSession(user)
	if err != nil {
		return nil, common.ErrInternal
	}

	s.sessions.Replace(session)
	s.bus.Emit(EventSignedUp, session.Clone())
	s.logger.Info(ctx, "account created", "user_id", user.ID)

	return session, nil
}

// SignOut clears the session of record unconditionally and emits
// EventSignedOut with a nil session. Signing out while signed out is fine.
func (s *Service) SignOut(ctx context.Context) {
	s.sessions.Clear()
	s.bus.Emit(EventSignedOut, nil)
	s.logger.Info(ctx, "session cleared")
}

// GetSession returns the current session, or nil, without side effects.
func (s *Service) GetSession() *models.Session {
	return s.sessions.Get()
}

// Bus exposes the event bus for subscribers such as the profile syncer.
func (s *Service) Bus() *Bus { return s.bus }

func (s *Service) newSession(user *models.User) (*models.Session, error) {
	access, err := GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return nil, err
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}
	return &models.Session{
		User:         user.Public(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// defaultProfile derives the initial profile from sign-up metadata, falling
// back to the email's local part for a missing nickname.
func defaultProfile(user *models.User, now time.Time) *models.Profile {
	fullName := user.Metadata["full_name"]
	nickname := user.Metadata["nickname"]
	if nickname == "" {
		nickname = strings.SplitN(user.Email, "@", 2)[0]
	}
	return &models.Profile{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  fullName,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
