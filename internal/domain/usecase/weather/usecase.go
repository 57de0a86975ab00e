package weather

import (
	"context"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// Ingest fetches the forecast of location from OpenWeatherMap and stores it as a new document
	Ingest(ctx context.Context, location string) (*entity.WeatherDocument, error)

	// RefreshTrackedLocations enqueues every tracked location for ingest, or ingests them
	// inline when no queue is configured. Per-location failures are counted, never fatal.
	RefreshTrackedLocations(ctx context.Context, requestID string) (model.RefreshResult, error)
}
