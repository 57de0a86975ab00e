package processor

import (
	"context"
	"errors"
	"testing"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeWeatherUseCase struct {
	locations []string
	err       error
}

func (f *fakeWeatherUseCase) Ingest(_ context.Context, location string) (*entity.WeatherDocument, error) {
	f.locations = append(f.locations, location)
	if location == "" {
		return nil, model.NewValidationError("Missing fields")
	}
	if f.err != nil {
		return nil, f.err
	}
	return &entity.WeatherDocument{ID: "doc-1", Location: location}, nil
}

func (f *fakeWeatherUseCase) RefreshTrackedLocations(context.Context, string) (model.RefreshResult, error) {
	return model.RefreshResult{}, nil
}

func message(body string) *types.Message {
	return &types.Message{MessageId: aws.String("m-1"), Body: aws.String(body)}
}

func TestHandleMessage(t *testing.T) {
	useCase := &fakeWeatherUseCase{}
	processor := NewIngestProcessor(useCase)
	before := testutil.ToFloat64(metrics.IngestMessagesTotal.WithLabelValues("ingested"))

	if err := processor.HandleMessage(context.Background(), message(`{"location":"Paris","requestId":"r-1"}`)); err != nil {
		t.Fatalf("HandleMessage() error = %v", err)
	}
	if len(useCase.locations) != 1 || useCase.locations[0] != "Paris" {
		t.Errorf("ingested = %v", useCase.locations)
	}
	if got := testutil.ToFloat64(metrics.IngestMessagesTotal.WithLabelValues("ingested")) - before; got != 1 {
		t.Errorf("ingested counter delta = %v", got)
	}
}

func TestHandleMessageDropsUnprocessable(t *testing.T) {
	processor := NewIngestProcessor(&fakeWeatherUseCase{})

	for _, body := range []string{`not json`, `{"location":""}`} {
		if err := processor.HandleMessage(context.Background(), message(body)); err != nil {
			t.Errorf("body %q: error = %v, want nil so the message is deleted", body, err)
		}
	}

	if err := processor.HandleMessage(context.Background(), nil); err == nil {
		t.Error("nil message must fail")
	}
}

func TestHandleMessageKeepsFailedIngest(t *testing.T) {
	upstream := &model.UpstreamError{Message: "Failed to fetch weather", Err: errors.New("timeout")}
	processor := NewIngestProcessor(&fakeWeatherUseCase{err: upstream})

	err := processor.HandleMessage(context.Background(), message(`{"location":"Paris"}`))
	var upstreamErr *model.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Errorf("error = %v, want upstream error so the message is retried", err)
	}
}
