package cache

import (
	"context"

	"weather-api/internal/domain/model"
	"weather-api/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// RedisHealthGateway reports the video cache backend
type RedisHealthGateway struct {
	client *redis.Client
	check  func(ctx context.Context, client *redis.Client) error
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client, check: redis.HealthCheck}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.UnknownComponent("Cache disabled")
	}

	if err := gateway.check(ctx, gateway.client); err != nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"message": err.Error()},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
			"backend": "redis",
		},
	}
}
