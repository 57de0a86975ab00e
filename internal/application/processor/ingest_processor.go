package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/metrics"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

type IngestProcessor struct {
	weatherUseCase weather.UseCase
}

func NewIngestProcessor(weatherUseCase weather.UseCase) *IngestProcessor {
	return &IngestProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface.
// Returning nil deletes the message, validation failures are dropped since a retry cannot succeed.
func (p *IngestProcessor) HandleMessage(ctx context.Context, msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		metrics.IngestMessagesTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("received nil message or message body")
	}

	var message model.IngestMessage
	if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
		metrics.IngestMessagesTotal.WithLabelValues("invalid").Inc()
		log.Warn("Dropping malformed ingest message", zap.String("body", *msg.Body), zap.Error(err))
		return nil
	}

	document, err := p.weatherUseCase.Ingest(ctx, message.Location)
	if errors.Is(err, model.ErrInvalidInput) {
		metrics.IngestMessagesTotal.WithLabelValues("invalid").Inc()
		log.Warn("Dropping invalid ingest message", zap.String("request_id", message.RequestID), zap.Error(err))
		return nil
	}
	if err != nil {
		metrics.IngestMessagesTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to ingest forecast of %s: %w", message.Location, err)
	}

	metrics.IngestMessagesTotal.WithLabelValues("ingested").Inc()
	log.Info("Ingested forecast from queue",
		zap.String("request_id", message.RequestID),
		zap.String("location", message.Location),
		zap.String("document_id", document.ID),
	)
	return nil
}
