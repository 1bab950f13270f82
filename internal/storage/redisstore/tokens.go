// Package redisstore keeps short-lived state in Redis: refresh tokens and
// rate-limit counters.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nortetech-site/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenPrefix = "refresh:"

// TokenStore maps refresh tokens to user IDs.
type TokenStore struct {
	rdb *redis.Client
}

// NewTokenStore creates a new TokenStore.
func NewTokenStore(rdb *redis.Client) *TokenStore {
	return &TokenStore{rdb: rdb}
}

// Save stores token for userID until ttl elapses.
func (s *TokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, refreshTokenPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// Consume returns the owner of token and deletes it, so a token works once.
func (s *TokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.GetDel(ctx, refreshTokenPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, storage.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("read refresh token: %w", err)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token value: %w", err)
	}
	return userID, nil
}

// Delete revokes token. Unknown tokens are ignored.
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, refreshTokenPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
