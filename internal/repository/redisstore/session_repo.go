// Package redisstore holds the Redis-backed session repository, used when
// sessions must survive process restarts.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &sessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

func (r *sessionRepository) Get(ctx context.Context, userID int64) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return &sess, nil
}

func (r *sessionRepository) Set(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", session.UserID, err)
	}
	return r.client.Set(ctx, sessionKey(session.UserID), raw, r.ttl).Err()
}

func (r *sessionRepository) Clear(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}
