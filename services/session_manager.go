package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

type AuthState string

const (
	StateInitializing  AuthState = "initializing"
	StateAuthenticated AuthState = "authenticated"
	StateAnonymous     AuthState = "anonymous"
)

type SessionConfig struct {
	TTL             time.Duration // used when the token carries no expiry
	RevalidateAfter time.Duration
}

// SessionManager is the single source of truth for who is logged in. It is
// created once at startup and handed to whoever needs it.
type SessionManager struct {
	store  SessionStore
	auth   *AuthService
	logger zerolog.Logger
	cfg    SessionConfig
	now    func() time.Time
}

func NewSessionManager(store SessionStore, auth *AuthService, logger zerolog.Logger, cfg SessionConfig) *SessionManager {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.RevalidateAfter <= 0 {
		cfg.RevalidateAfter = 5 * time.Minute
	}
	return &SessionManager{store: store, auth: auth, logger: logger, cfg: cfg, now: time.Now}
}

func (m *SessionManager) NewID() string {
	return uuid.NewString()
}

// Login authenticates against the API and stores token + user under sid.
// A failed login leaves any existing session untouched.
func (m *SessionManager) Login(ctx context.Context, sid string, in models.LoginRequest) (*models.Session, error) {
	resp, err := m.auth.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return m.Adopt(ctx, sid, resp)
}

// Adopt turns an auth response (login or registration) into the stored session.
func (m *SessionManager) Adopt(ctx context.Context, sid string, resp *models.AuthResponse) (*models.Session, error) {
	now := m.now()
	sess := &models.Session{
		ID:          sid,
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresAt:   m.tokenExpiry(resp.AccessToken, resp.ExpiresIn, now),
		User:        resp.User,
		ValidatedAt: now,
	}
	if err := m.SetSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetSession stores a session as-is.
func (m *SessionManager) SetSession(ctx context.Context, sess *models.Session) error {
	if sess.ID == "" {
		return errors.New("session id is required")
	}
	if err := m.store.Save(ctx, sess); err != nil {
		m.logger.Error().Err(err).Str("session", sess.ID).Msg("save session")
		return err
	}
	return nil
}

// Logout forgets the session locally; the API has no logout endpoint.
func (m *SessionManager) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return m.store.Delete(ctx, sid)
}

// Expire tears a session down after the API rejected its token.
func (m *SessionManager) Expire(ctx context.Context, sid string) {
	if err := m.store.Delete(ctx, sid); err != nil {
		m.logger.Error().Err(err).Str("session", sid).Msg("expire session")
		return
	}
	m.logger.Info().Str("session", sid).Msg("session expired")
}

// RefreshProfile re-reads the user behind the stored token. A 401 clears the
// session; any other failure keeps the cached user. Both return a nil user.
func (m *SessionManager) RefreshProfile(ctx context.Context, sid string) (*models.User, error) {
	sess, err := m.store.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	refreshed, _ := m.refresh(ctx, sess)
	if refreshed == nil {
		return nil, nil
	}
	return &refreshed.User, nil
}

// refresh returns the updated session, or nil when the profile could not be
// re-read. cleared reports whether the session was torn down.
func (m *SessionManager) refresh(ctx context.Context, sess *models.Session) (refreshed *models.Session, cleared bool) {
	user, err := m.auth.Profile(apiclient.WithToken(ctx, sess.AccessToken))
	if err != nil {
		if apiclient.IsKind(err, apiclient.KindAuth) {
			m.Expire(ctx, sess.ID)
			return nil, true
		}
		m.logger.Warn().Err(err).Str("session", sess.ID).Msg("profile refresh failed, keeping cached user")
		return nil, false
	}
	sess.User = *user
	sess.ValidatedAt = m.now()
	if err := m.store.Save(ctx, sess); err != nil {
		m.logger.Error().Err(err).Str("session", sess.ID).Msg("save refreshed session")
	}
	return sess, false
}

// Active reports whether sid still has a stored session.
func (m *SessionManager) Active(ctx context.Context, sid string) bool {
	_, err := m.store.Get(ctx, sid)
	return err == nil
}

// Bootstrap resolves the initializing state for a request: it trusts the
// stored session optimistically and re-validates it with the API when the last
// validation is older than RevalidateAfter. Guards must not run before it returns.
func (m *SessionManager) Bootstrap(ctx context.Context, sid string) (AuthState, *models.Session) {
	if sid == "" {
		return StateAnonymous, nil
	}
	sess, err := m.store.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			m.logger.Error().Err(err).Str("session", sid).Msg("load session")
		}
		return StateAnonymous, nil
	}
	now := m.now()
	if sess.Expired(now) {
		m.Expire(ctx, sid)
		return StateAnonymous, nil
	}
	if now.Sub(sess.ValidatedAt) < m.cfg.RevalidateAfter {
		return StateAuthenticated, sess
	}
	refreshed, cleared := m.refresh(ctx, sess)
	if cleared {
		return StateAnonymous, nil
	}
	if refreshed != nil {
		return StateAuthenticated, refreshed
	}
	return StateAuthenticated, sess
}

// tokenExpiry prefers the JWT exp claim, then expiresIn, then the configured TTL.
// The token is not verified here; the API remains the authority.
func (m *SessionManager) tokenExpiry(token string, expiresIn int64, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if expiresIn > 0 {
		return now.Add(time.Duration(expiresIn) * time.Second)
	}
	return now.Add(m.cfg.TTL)
}
