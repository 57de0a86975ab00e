package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const healthCheckKeyPrefix = "health_check:"

// healthCheckKey returns a key owned by a single check
func healthCheckKey() string {
	return healthCheckKeyPrefix + uuid.NewString()
}

// HealthCheck verifies the server answers PING and accepts a short lived write
func HealthCheck(ctx context.Context, client *Client) error {
	if client == nil {
		return fmt.Errorf("redis client is not configured")
	}

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	key := healthCheckKey()
	value := fmt.Sprintf("%d", time.Now().UnixNano())
	if err := client.Set(ctx, key, value, 10*time.Second); err != nil {
		return fmt.Errorf("redis write failed: %w", err)
	}

	got, err := client.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("redis read failed: %w", err)
	}
	if got != value {
		return fmt.Errorf("redis read returned unexpected value")
	}

	return client.Delete(ctx, key)
}
