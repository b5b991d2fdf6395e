package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

const scanBatchSize = 100

// RedisStore is a domain.FastStore backed by Redis.
type RedisStore struct {
	client    redis.UniversalClient
	listLimit int64
}

var _ domain.FastStore = (*RedisStore)(nil)

// NewRedisStore wraps client. History lists are trimmed to their newest
// listLimit entries on every append; a limit <= 0 disables trimming.
func NewRedisStore(client redis.UniversalClient, listLimit int) *RedisStore {
	return &RedisStore{client: client, listLimit: int64(listLimit)}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "redis.Get", trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		fail(span, err)
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	ctx, span := tracer.Start(ctx, "redis.Set", trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		fail(span, err)
		return err
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// KeysMatching walks the keyspace with SCAN rather than KEYS so large
// keyspaces do not block the server.
func (r *RedisStore) KeysMatching(ctx context.Context, pattern string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "redis.Scan", trace.WithAttributes(attribute.String("redis.pattern", pattern)))
	defer span.End()

	seen := make(map[string]struct{})
	keys := []string{}
	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		// SCAN may return a key more than once
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	if err := iter.Err(); err != nil {
		fail(span, err)
		return nil, fmt.Errorf("scan %q: %w", pattern, err)
	}
	span.SetAttributes(attribute.Int("result.count", len(keys)))
	return keys, nil
}

func (r *RedisStore) ListAppend(ctx context.Context, key, value string) error {
	ctx, span := tracer.Start(ctx, "redis.ListAppend", trace.WithAttributes(attribute.String("redis.key", key)))
	defer span.End()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, value)
		if r.listLimit > 0 {
			pipe.LTrim(ctx, key, -r.listLimit, -1)
		}
		return nil
	})
	if err != nil {
		fail(span, err)
		return err
	}
	return nil
}

func (r *RedisStore) ListRange(ctx context.Context, key string) ([]string, error) {
	return r.client.LRange(ctx, key, 0, -1).Result()
}
