package video

import (
	"context"

	"weather-api/internal/domain/entity"
)

type UseCase interface {
	// SearchTravelVideos returns YouTube travel videos of a location, maxResults defaults to 3
	SearchTravelVideos(ctx context.Context, location string, maxResults int) ([]entity.Video, error)
}

// Cache is the read-through cache used for search results
type Cache interface {
	GetOrSet(ctx context.Context, key string, dest interface{}, setter func() (interface{}, error)) (bool, error)
}
