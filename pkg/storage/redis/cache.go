// Package redis provides the go-redis backed result cache.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/skillscan/pkg/keywords"
)

const keyPrefix = "skillscan:keywords:"

// Connect parses a redis:// URL and verifies the connection with a PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// Cache stores extraction results as JSON with a fixed TTL.
type Cache struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache wraps a redis client.
func NewCache(rdb redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		rdb:    rdb,
		ttl:    ttl,
		logger: slog.Default().With("component", "result-cache"),
	}
}

type entry struct {
	Keywords []string `json:"keywords"`
	Matched  []string `json:"matched"`
	Entities []string `json:"entities"`
}

func (c *Cache) Get(ctx context.Context, key string) (keywords.Result, bool) {
	data, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		return keywords.Result{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		return keywords.Result{}, false
	}
	c.logger.Debug("cache hit", "key", key)
	return keywords.Result{Keywords: e.Keywords, Matched: e.Matched, Entities: e.Entities}, true
}

func (c *Cache) Set(ctx context.Context, key string, r keywords.Result) {
	data, err := json.Marshal(entry{Keywords: r.Keywords, Matched: r.Matched, Entities: r.Entities})
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

var _ keywords.Cache = (*Cache)(nil)
