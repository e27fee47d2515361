package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"salonpro-web/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists what a browser front end would keep in local storage:
// the bearer token and the serialized user, keyed by the session cookie.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// MemorySessionStore keeps sessions in process. Tokens stay sealed so every
// store behaves the same towards the sealer.
type MemorySessionStore struct {
	mu     sync.RWMutex
	sealer *TokenSealer
	m      map[string]storedSession
}

type storedSession struct {
	Token       []byte
	TokenType   string
	User        []byte
	ExpiresAt   time.Time
	ValidatedAt time.Time
}

func NewMemorySessionStore(sealer *TokenSealer) *MemorySessionStore {
	return &MemorySessionStore{sealer: sealer, m: make(map[string]storedSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	rec, ok := s.m[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return decodeSession(s.sealer, id, rec)
}

func (s *MemorySessionStore) Save(_ context.Context, sess *models.Session) error {
	rec, err := encodeSession(s.sealer, sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.m[sess.ID] = rec
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, rec := range s.m {
		if !rec.ExpiresAt.IsZero() && !now.Before(rec.ExpiresAt) {
			delete(s.m, id)
			n++
		}
	}
	return n, nil
}

func encodeSession(sealer *TokenSealer, sess *models.Session) (storedSession, error) {
	token, err := sealer.Seal(sess.AccessToken)
	if err != nil {
		return storedSession{}, err
	}
	user, err := json.Marshal(sess.User)
	if err != nil {
		return storedSession{}, err
	}
	return storedSession{
		Token:       token,
		TokenType:   sess.TokenType,
		User:        user,
		ExpiresAt:   sess.ExpiresAt,
		ValidatedAt: sess.ValidatedAt,
	}, nil
}

func decodeSession(sealer *TokenSealer, id string, rec storedSession) (*models.Session, error) {
	token, err := sealer.Open(rec.Token)
	if err != nil {
		return nil, err
	}
	sess := &models.Session{
		ID:          id,
		AccessToken: token,
		TokenType:   rec.TokenType,
		ExpiresAt:   rec.ExpiresAt,
		ValidatedAt: rec.ValidatedAt,
	}
	if err := json.Unmarshal(rec.User, &sess.User); err != nil {
		return nil, err
	}
	return sess, nil
}
