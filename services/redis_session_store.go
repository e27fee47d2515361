package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"salonpro-web/models"
)

const redisSessionPrefix = "session:"

// RedisSessionStore keeps one hash per session; redis expiry removes stale ones.
type RedisSessionStore struct {
	client *redis.Client
	sealer *TokenSealer
}

func NewRedisSessionStore(client *redis.Client, sealer *TokenSealer) *RedisSessionStore {
	return &RedisSessionStore{client: client, sealer: sealer}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	fields, err := s.client.HGetAll(ctx, redisSessionPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}
	expires, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("session %s: bad expires_at: %w", id, err)
	}
	validated, err := strconv.ParseInt(fields["validated_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("session %s: bad validated_at: %w", id, err)
	}
	return decodeSession(s.sealer, id, storedSession{
		Token:       []byte(fields["token"]),
		TokenType:   fields["token_type"],
		User:        []byte(fields["user"]),
		ExpiresAt:   time.Unix(expires, 0).UTC(),
		ValidatedAt: time.Unix(validated, 0).UTC(),
	})
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.Session) error {
	enc, err := encodeSession(s.sealer, sess)
	if err != nil {
		return err
	}
	key := redisSessionPrefix + sess.ID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"token":        enc.Token,
			"token_type":   enc.TokenType,
			"user":         enc.User,
			"expires_at":   enc.ExpiresAt.Unix(),
			"validated_at": enc.ValidatedAt.Unix(),
		})
		if !enc.ExpiresAt.IsZero() {
			pipe.ExpireAt(ctx, key, enc.ExpiresAt)
		}
		return nil
	})
	return err
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisSessionPrefix+id).Err()
}

// DeleteExpired is a no-op: keys carry their own expiry.
func (s *RedisSessionStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
