package cache

import (
	"fmt"

	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
)

const VideosCacheName = "videos"

// Connect builds the redis client described by app.redis
func Connect() (*redis.Client, error) {
	config := redis.NewRedisConfig()
	config.Host = resource.GetString("app.redis.host")
	config.Port = resource.GetInt("app.redis.port")
	config.Password = resource.GetString("app.redis.password")
	config.Database = resource.GetInt("app.redis.database")
	config.WithCacheTTL(VideosCacheName, resource.GetDuration("app.redis.cache.videos-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewVideosCache is the read-through cache of travel video searches
func NewVideosCache(client *redis.Client) *redis.Cache {
	return redis.NewCache(client, redis.NewCacheOptions().WithCacheName(VideosCacheName))
}
