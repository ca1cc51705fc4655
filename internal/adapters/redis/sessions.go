package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"floripa_guide/internal/domain"
)

// Sessions stores login sessions as JSON under session:{token}; Redis expiry
// enforces the TTL.
type Sessions struct{ c *redis.Client }

func NewSessions(c *redis.Client) *Sessions { return &Sessions{c: c} }

func sessionKey(token string) string { return "session:" + token }

func (s *Sessions) Put(ctx context.Context, sess domain.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, sessionKey(sess.Token), b, ttl).Err()
}

func (s *Sessions) Get(ctx context.Context, token string) (domain.Session, error) {
	b, err := s.c.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	var sess domain.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *Sessions) Delete(ctx context.Context, token string) error {
	return s.c.Del(ctx, sessionKey(token)).Err()
}
