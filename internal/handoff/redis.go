// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultKey is the Redis key used when none is configured.
const DefaultKey = "contentspark:handoff"

var _ Buffer = (*RedisSlot)(nil)

// RedisSlot is a Buffer shared by every process that talks to the same
// Redis. Consume maps to GETDEL so two consumers never both see the value.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedisSlot returns a slot stored under key. A zero ttl keeps the value
// until it is consumed or cleared.
func NewRedisSlot(client *redis.Client, key string, ttl time.Duration, log zerolog.Logger) *RedisSlot {
	if key == "" {
		key = DefaultKey
	}
	return &RedisSlot{
		client: client,
		key:    key,
		ttl:    ttl,
		log:    log.With().Str("component", "handoff").Str("key", key).Logger(),
	}
}

func (r *RedisSlot) Set(ctx context.Context, content string) error {
	if err := r.client.Set(ctx, r.key, content, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: setting %s: %w", ErrUnavailable, r.key, err)
	}
	r.log.Debug().Int("bytes", len(content)).Msg("handoff set")
	return nil
}

func (r *RedisSlot) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: clearing %s: %w", ErrUnavailable, r.key, err)
	}
	r.log.Debug().Msg("handoff cleared")
	return nil
}

func (r *RedisSlot) Consume(ctx context.Context) (string, bool, error) {
	v, err := r.client.GetDel(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: consuming %s: %w", ErrUnavailable, r.key, err)
	}
	r.log.Debug().Int("bytes", len(v)).Msg("handoff consumed")
	return v, true, nil
}
