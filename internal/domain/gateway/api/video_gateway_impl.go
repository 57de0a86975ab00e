package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
	"weather-api/pkg/metrics"
)

const searchPath = "/youtube/v3/search"

// videoGatewayImpl implements the VideoGateway interface
type videoGatewayImpl struct {
	httpClient *http.Client
}

// NewVideoGateway creates a YouTube Data API gateway authenticated by apiKey
func NewVideoGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) VideoGateway {
	clientOptions.DefaultQueryParams = map[string]string{
		"key": apiKey,
	}

	return &videoGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// SearchVideos searches videos by free text
func (v *videoGatewayImpl) SearchVideos(ctx context.Context, query string, maxResults int) ([]entity.Video, error) {
	successResp, errResp, _, err := v.httpClient.Request().
		WithContext(ctx).
		WithPath(searchPath).
		WithQueryParams(map[string]string{
			"part":       "snippet",
			"q":          query,
			"maxResults": strconv.Itoa(maxResults),
			"type":       "video",
		}).
		WithSuccessResp(&external.YouTubeSearchResponse{}).
		WithErrorResp(&external.YouTubeErrorResponse{}).
		Execute()

	metrics.UpstreamRequestsTotal.WithLabelValues("youtube", metrics.Outcome(err)).Inc()

	if err == nil {
		response := successResp.(*external.YouTubeSearchResponse)
		if response.Items == nil {
			return []entity.Video{}, nil
		}
		return response.Items, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.YouTubeErrorResponse)
		if errorResponse.Error.Message != "" {
			return nil, fmt.Errorf("youtube: %s: %w", errorResponse.Error.Message, err)
		}
	}

	return nil, errors.Join(errors.New("youtube request failed"), err)
}
