package cache

import (
	"context"
	"time"

	"doctor-directory/internal/domain/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// memoryCacheSize bounds the in-process cache; the directory stores one payload.
const memoryCacheSize = 8

// MemoryPayloadCache implements repository.PayloadCache in process. It is the
// fallback when Redis is not configured.
type MemoryPayloadCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemoryPayloadCache keeps entries for ttl. The ttl passed to Set is
// ignored because the LRU expires every entry on the same schedule.
func NewMemoryPayloadCache(ttl time.Duration) repository.PayloadCache {
	return &MemoryPayloadCache{lru: expirable.NewLRU[string, []byte](memoryCacheSize, nil, ttl)}
}

func (c *MemoryPayloadCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := c.lru.Get(key)
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return value, nil
}

func (c *MemoryPayloadCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.lru.Add(key, value)
	return nil
}
