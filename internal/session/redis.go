// Package session stores registrant login sessions.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"registrar/internal/config"
	"registrar/pkg/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured Redis server. It returns nil
// without error when no URL is configured.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		return nil, nil //nolint: nilnil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis URL: %w", err)
	}
	if cfg.Redis.PoolSize > 0 {
		opts.PoolSize = cfg.Redis.PoolSize
	}
	opts.DialTimeout = cfg.Redis.DialTimeout
	opts.ReadTimeout = cfg.Redis.ReadTimeout
	opts.WriteTimeout = cfg.Redis.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return client, nil
}

// RedisStore keeps sessions as JSON values whose Redis TTL matches their expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a RedisStore namespacing its keys with prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisStore) key(ID string) string { return r.prefix + ID }

func (r *RedisStore) Create(ctx context.Context, s domain.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("could not store session: already expired")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("could not store session: %w", err)
	}

	return nil
}

func (r *RedisStore) Get(ctx context.Context, ID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.key(ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil //nolint: nilnil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not unmarshal session: %w", err)
	}
	if s.Expired(r.now()) {
		return nil, nil //nolint: nilnil
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, ID string) error {
	if err := r.client.Del(ctx, r.key(ID)).Err(); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}
