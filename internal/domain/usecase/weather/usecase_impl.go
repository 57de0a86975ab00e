package weather

import (
	"context"
	"fmt"
	"strings"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	queueName   string
	locations   []string
	apiGateway  api.WeatherGateway
	dbGateway   db.WeatherDocumentGateway
	queueSender queue.Sender
}

// NewWeatherUseCase creates the ingest use case. queueSender may be nil, in which
// case tracked locations are ingested inline.
func NewWeatherUseCase(queueName string, locations []string, queueSender queue.Sender, apiGateway api.WeatherGateway, dbGateway db.WeatherDocumentGateway) UseCase {
	return &weatherUseCase{
		queueName:   queueName,
		locations:   trackedLocations(locations),
		queueSender: queueSender,
		apiGateway:  apiGateway,
		dbGateway:   dbGateway,
	}
}

// Ingest fetches and stores the forecast of a location
func (uc *weatherUseCase) Ingest(ctx context.Context, location string) (*entity.WeatherDocument, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, model.NewValidationError(msg.GetMessage("weather.error.missing-location"))
	}

	payload, err := uc.apiGateway.GetForecast(ctx, BuildForecastQuery(location))
	if err != nil {
		return nil, &model.UpstreamError{Message: msg.GetMessage("weather.error.fetch-failed"), Err: err}
	}

	document, err := uc.dbGateway.Create(ctx, entity.WeatherDocument{Location: location, Data: *payload})
	if err != nil {
		return nil, fmt.Errorf("failed to save forecast of %s: %w", location, err)
	}

	log.Info("Forecast ingested",
		zap.String("id", document.ID),
		zap.String("location", location),
		zap.Int("entries", len(document.Data.List)))
	return document, nil
}

// RefreshTrackedLocations enqueues or ingests every tracked location
func (uc *weatherUseCase) RefreshTrackedLocations(ctx context.Context, requestID string) (model.RefreshResult, error) {
	if len(uc.locations) == 0 {
		log.Info("No tracked locations configured", zap.String("request_id", requestID))
		return model.RefreshResult{}, nil
	}

	if uc.queueSender == nil {
		return uc.ingestInline(ctx, requestID), nil
	}

	messages := make([]queue.BatchMessage, len(uc.locations))
	for i, location := range uc.locations {
		messages[i] = queue.BatchMessage{
			MessageID: fmt.Sprintf("scheduled-%s-%d", requestID, i),
			Body:      model.IngestMessage{Location: location, RequestID: requestID},
		}
	}

	result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
	if err != nil {
		log.Error("Failed to enqueue tracked locations", zap.String("request_id", requestID), zap.Error(err))
		return model.RefreshResult{}, fmt.Errorf("failed to enqueue tracked locations: %w", err)
	}

	for _, failedID := range result.Failed {
		for i, message := range messages {
			if message.MessageID == failedID {
				log.Warn("Failed to enqueue location",
					zap.String("request_id", requestID),
					zap.String("location", uc.locations[i]))
				break
			}
		}
	}

	log.Info("Tracked locations enqueued",
		zap.String("request_id", requestID),
		zap.Int("enqueued", len(result.Successful)),
		zap.Int("failed", len(result.Failed)))

	return model.RefreshResult{Enqueued: len(result.Successful), Failed: len(result.Failed)}, nil
}

// ingestInline ingests tracked locations one by one when no queue is available
func (uc *weatherUseCase) ingestInline(ctx context.Context, requestID string) model.RefreshResult {
	var result model.RefreshResult

	for _, location := range uc.locations {
		if ctx.Err() != nil {
			result.Failed++
			continue
		}
		if _, err := uc.Ingest(ctx, location); err != nil {
			log.Warn("Failed to ingest tracked location",
				zap.String("request_id", requestID),
				zap.String("location", location),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Enqueued++
	}

	return result
}

// trackedLocations trims the configured locations and drops blanks and repeats
func trackedLocations(locations []string) []string {
	seen := make(map[string]struct{}, len(locations))
	result := make([]string, 0, len(locations))
	for _, location := range locations {
		location = strings.TrimSpace(location)
		key := strings.ToLower(location)
		if location == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, location)
	}
	return result
}
