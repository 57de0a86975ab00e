package api

import (
	"context"

	"weather-api/internal/domain/entity"
)

// WeatherGateway defines the OpenWeatherMap calls
type WeatherGateway interface {
	// GetForecast returns the 5 day / 3 hour forecast for the given location query
	// (q, zip or lat/lon parameters). Units and API key are added by the gateway.
	GetForecast(ctx context.Context, query map[string]string) (*entity.ForecastPayload, error)
}

// VideoGateway defines the YouTube Data API calls
type VideoGateway interface {
	// SearchVideos returns up to maxResults videos matching query
	SearchVideos(ctx context.Context, query string, maxResults int) ([]entity.Video, error)
}
