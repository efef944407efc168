// Package cache provides the Redis-backed read cache for topic listings.
// It is never consulted by writes; every write check runs against the
// database under the topic row lock.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/threadboard/internal/config"
	"github.com/heartmarshall/threadboard/internal/domain"
)

const (
	topicsKey    = "topics"
	topicsGenKey = "topics:gen"
)

// NewClient connects to Redis and verifies the connection.
// Addr may be a plain host:port or a redis:// URL.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if strings.Contains(cfg.Addr, "://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("cache: parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis: %w", err)
	}
	return client, nil
}

// TopicCache stores the live topic list under one key, next to a
// generation counter that every invalidation bumps. A list read from the
// database is stored only if the generation it was read under is still
// current, so a listing that raced a write cannot put its snapshot back.
// A TopicCache with a nil client is a no-op that always misses.
type TopicCache struct {
	rdb    *redis.Client
	key    string
	genKey string
	ttl    time.Duration
}

// storeIfCurrent sets KEYS[2] to ARGV[2] (with a TTL of ARGV[3] ms when
// positive) only if KEYS[1] still holds generation ARGV[1].
var storeIfCurrent = redis.NewScript(`
if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// NewTopicCache creates a TopicCache. Pass a nil client to disable caching.
func NewTopicCache(rdb *redis.Client, prefix string, ttl time.Duration) *TopicCache {
	return &TopicCache{
		rdb:    rdb,
		key:    prefix + topicsKey,
		genKey: prefix + topicsGenKey,
		ttl:    ttl,
	}
}

// GetTopics returns the cached list and the current generation in one
// round trip. topics is nil on a miss; gen is what a following SetTopics
// must pass.
func (c *TopicCache) GetTopics(ctx context.Context) ([]*domain.Topic, int64, error) {
	if c.rdb == nil {
		return nil, 0, nil
	}

	vals, err := c.rdb.MGet(ctx, c.key, c.genKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("cache: get topics: %w", err)
	}

	var gen int64
	if s, ok := vals[1].(string); ok {
		gen, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("cache: parse generation: %w", err)
		}
	}

	s, ok := vals[0].(string)
	if !ok {
		return nil, gen, nil
	}

	topics := []*domain.Topic{}
	if err := json.Unmarshal([]byte(s), &topics); err != nil {
		return nil, gen, fmt.Errorf("cache: decode topics: %w", err)
	}
	return topics, gen, nil
}

// SetTopics stores the list with the configured TTL unless the cache was
// invalidated after generation gen was read. A skipped write is not an error.
func (c *TopicCache) SetTopics(ctx context.Context, gen int64, topics []*domain.Topic) error {
	if c.rdb == nil {
		return nil
	}
	if topics == nil {
		topics = []*domain.Topic{}
	}

	raw, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("cache: encode topics: %w", err)
	}

	args := []any{strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds()}
	if err := storeIfCurrent.Run(ctx, c.rdb, []string{c.genKey, c.key}, args...).Err(); err != nil {
		return fmt.Errorf("cache: set topics: %w", err)
	}
	return nil
}

// Invalidate bumps the generation and removes the cached list atomically.
func (c *TopicCache) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache: invalidate topics: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable. A disabled cache is always healthy.
func (c *TopicCache) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
