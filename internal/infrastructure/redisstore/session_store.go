package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/skatetube/internal/domain/repository"
	"github.com/oksasatya/skatetube/pkg/helpers"
)

func sessionKey(token string) string { return "user:session:" + token }

// SessionStore keeps each session as a hash with a TTL.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Create(ctx context.Context, token, userID string, ttl time.Duration) error {
	key := sessionKey(token)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    userID,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (string, error) {
	uid, err := s.rdb.HGet(ctx, sessionKey(token), "user_id").Result()
	if errors.Is(err, redis.Nil) || (err == nil && uid == "") {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(token))
}

var _ repository.SessionStore = (*SessionStore)(nil)
