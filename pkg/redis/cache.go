package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is not cached
var ErrCacheMiss = errors.New("redis: cache miss")

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is used when the client configuration has no TTL for CacheName
	TTL          time.Duration
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
	// CacheName prefixes every key and selects the configured TTL
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          1 * time.Hour,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithCacheName sets the cache name for key prefix and TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides high-level caching operations
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// getTTL returns the TTL for the cache, checking client configuration first
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" && c.client.config != nil {
		if ttl := c.client.config.cacheTTL(c.opts.CacheName); ttl > 0 {
			return ttl
		}
	}
	return c.opts.TTL
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func buildCacheKey(cacheName, key string) string {
	if cacheName != "" {
		return cacheName + "::" + key
	}
	return key
}

// Get retrieves a value from cache and deserializes it into dest.
// ErrCacheMiss is returned when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	fullKey := buildCacheKey(c.opts.CacheName, key)
	data, found, err := c.client.GetBytes(ctx, fullKey)
	if err != nil {
		return err
	}
	if !found {
		return ErrCacheMiss
	}

	return c.opts.Deserializer(data, dest)
}

// GetOrSet retrieves a value from cache, or loads it with setter and caches it.
// Cache read and write failures fall through to the setter so a broken cache
// never fails the caller; only setter errors are returned.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{}, setter func() (interface{}, error)) (hit bool, err error) {
	if err := c.Get(ctx, key, dest); err == nil {
		return true, nil
	}

	value, err := setter()
	if err != nil {
		return false, err
	}

	data, err := c.opts.Serializer(value)
	if err != nil {
		return false, fmt.Errorf("failed to serialize value: %w", err)
	}

	_ = c.client.Set(ctx, buildCacheKey(c.opts.CacheName, key), data, c.getTTL())

	return false, c.opts.Deserializer(data, dest)
}
