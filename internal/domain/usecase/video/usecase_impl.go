package video

import (
	"context"
	"fmt"
	"strings"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/model"
	"weather-api/pkg/metrics"
	"weather-api/pkg/msg"
	"weather-api/pkg/util/numberutils"
)

const (
	DefaultMaxResults = 3
	MaxResultsLimit   = 10
	cacheName         = "videos"
)

type videoUseCase struct {
	apiGateway        api.VideoGateway
	cache             Cache
	defaultMaxResults int
}

// NewVideoUseCase creates the video search use case. cache may be nil.
func NewVideoUseCase(apiGateway api.VideoGateway, cache Cache, defaultMaxResults int) UseCase {
	if defaultMaxResults <= 0 {
		defaultMaxResults = DefaultMaxResults
	}

	return &videoUseCase{
		apiGateway:        apiGateway,
		cache:             cache,
		defaultMaxResults: numberutils.ClampInt(defaultMaxResults, 1, MaxResultsLimit),
	}
}

// SearchTravelVideos searches "<location> travel" videos, through the cache when configured
func (uc *videoUseCase) SearchTravelVideos(ctx context.Context, location string, maxResults int) ([]entity.Video, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, model.NewValidationError(msg.GetMessage("video.error.missing-location"))
	}

	if maxResults <= 0 {
		maxResults = uc.defaultMaxResults
	}
	maxResults = numberutils.ClampInt(maxResults, 1, MaxResultsLimit)

	search := func() (interface{}, error) {
		return uc.apiGateway.SearchVideos(ctx, location+" travel", maxResults)
	}

	var videos []entity.Video
	if uc.cache == nil {
		result, err := search()
		if err != nil {
			return nil, uc.fetchFailed(err)
		}
		return result.([]entity.Video), nil
	}

	key := fmt.Sprintf("%s:%d", strings.ToLower(location), maxResults)
	hit, err := uc.cache.GetOrSet(ctx, key, &videos, search)
	if err != nil {
		return nil, uc.fetchFailed(err)
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheRequestsTotal.WithLabelValues(cacheName, result).Inc()

	return videos, nil
}

func (uc *videoUseCase) fetchFailed(err error) error {
	return &model.UpstreamError{Message: msg.GetMessage("video.error.fetch-failed"), Err: err}
}
