package weather

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
)

type fakeWeatherGateway struct {
	queries []map[string]string
	err     error
}

func (f *fakeWeatherGateway) GetForecast(_ context.Context, query map[string]string) (*entity.ForecastPayload, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return &entity.ForecastPayload{Cod: "200", Cnt: 1, List: []entity.ForecastEntry{{DtTxt: "2024-05-01 12:00:00"}}}, nil
}

type fakeDocumentGateway struct {
	created []entity.WeatherDocument
}

func (f *fakeDocumentGateway) List(context.Context) ([]entity.WeatherDocument, error) {
	return nil, nil
}
func (f *fakeDocumentGateway) FindByLocation(context.Context, string) ([]entity.WeatherDocument, error) {
	return nil, nil
}
func (f *fakeDocumentGateway) FindByID(context.Context, string) (*entity.WeatherDocument, error) {
	return nil, nil
}
func (f *fakeDocumentGateway) Create(_ context.Context, d entity.WeatherDocument) (*entity.WeatherDocument, error) {
	d.ID = "doc-1"
	f.created = append(f.created, d)
	return &d, nil
}
func (f *fakeDocumentGateway) Update(context.Context, entity.WeatherDocument) (*entity.WeatherDocument, error) {
	return nil, nil
}
func (f *fakeDocumentGateway) Delete(context.Context, string) (bool, error) { return false, nil }
func (f *fakeDocumentGateway) DeleteCreatedBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type fakeSender struct {
	queueName string
	messages  []queue.BatchMessage
	failIDs   []string
	err       error
}

func (f *fakeSender) SendMessage(context.Context, string, any) error { return nil }

func (f *fakeSender) SendMessageBatch(_ context.Context, queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queueName = queueName
	f.messages = messages
	result := &queue.BatchResult{}
	for _, m := range messages {
		failed := false
		for _, id := range f.failIDs {
			failed = failed || id == m.MessageID
		}
		if failed {
			result.Failed = append(result.Failed, m.MessageID)
		} else {
			result.Successful = append(result.Successful, m.MessageID)
		}
	}
	return result, nil
}

func TestBuildForecastQuery(t *testing.T) {
	tests := []struct {
		location string
		want     map[string]string
	}{
		{"30.4,-84.2", map[string]string{"lat": "30.4", "lon": "-84.2"}},
		{"-33,151", map[string]string{"lat": "-33", "lon": "151"}},
		{"32301", map[string]string{"zip": "32301,us"}},
		{"323011", map[string]string{"q": "323011"}},
		{"Paris", map[string]string{"q": "Paris"}},
		{"30.4, -84.2", map[string]string{"q": "30.4, -84.2"}},
		{"São Paulo", map[string]string{"q": "São Paulo"}},
		{"90,-180", map[string]string{"lat": "90", "lon": "-180"}},
		{"91,10", map[string]string{"q": "91,10"}},
		{"10,180.5", map[string]string{"q": "10,180.5"}},
		{"1e1,2", map[string]string{"q": "1e1,2"}},
		{"30.,2", map[string]string{"q": "30.,2"}},
		{"+30,2", map[string]string{"q": "+30,2"}},
		{"３２３０１", map[string]string{"q": "３２３０１"}},
	}

	for _, tt := range tests {
		if got := BuildForecastQuery(tt.location); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BuildForecastQuery(%q) = %v, want %v", tt.location, got, tt.want)
		}
	}
}

func TestIngestStoresForecast(t *testing.T) {
	apiGateway := &fakeWeatherGateway{}
	dbGateway := &fakeDocumentGateway{}
	uc := NewWeatherUseCase("weather-ingest", nil, nil, apiGateway, dbGateway)

	document, err := uc.Ingest(context.Background(), " 32301 ")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if document.Location != "32301" || document.Data.Cod != "200" || len(dbGateway.created) != 1 {
		t.Errorf("document = %+v", document)
	}
	if !reflect.DeepEqual(apiGateway.queries[0], map[string]string{"zip": "32301,us"}) {
		t.Errorf("query = %v", apiGateway.queries[0])
	}
}

func TestIngestErrors(t *testing.T) {
	uc := NewWeatherUseCase("q", nil, nil, &fakeWeatherGateway{}, &fakeDocumentGateway{})
	if _, err := uc.Ingest(context.Background(), "  "); !errors.Is(err, model.ErrInvalidInput) || err.Error() != "Missing fields" {
		t.Errorf("empty location error = %v", err)
	}

	dbGateway := &fakeDocumentGateway{}
	uc = NewWeatherUseCase("q", nil, nil, &fakeWeatherGateway{err: errors.New("timeout")}, dbGateway)
	_, err := uc.Ingest(context.Background(), "Paris")

	var upstreamErr *model.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Message != "Failed to fetch weather" {
		t.Errorf("upstream error = %v", err)
	}
	if len(dbGateway.created) != 0 {
		t.Errorf("nothing must be stored on upstream failure")
	}
}

func TestRefreshTrackedLocationsEnqueues(t *testing.T) {
	sender := &fakeSender{failIDs: []string{"scheduled-req-1-1"}}
	uc := NewWeatherUseCase("weather-ingest", []string{"Paris", " paris", "", "Tokyo"}, sender, &fakeWeatherGateway{}, &fakeDocumentGateway{})

	result, err := uc.RefreshTrackedLocations(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("RefreshTrackedLocations() error = %v", err)
	}
	if result.Enqueued != 1 || result.Failed != 1 {
		t.Errorf("result = %+v", result)
	}
	if sender.queueName != "weather-ingest" || len(sender.messages) != 2 {
		t.Fatalf("sent %d messages to %q", len(sender.messages), sender.queueName)
	}
	body := sender.messages[1].Body.(model.IngestMessage)
	if body.Location != "Tokyo" || body.RequestID != "req-1" {
		t.Errorf("body = %+v", body)
	}
}

func TestRefreshTrackedLocationsBatchFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("queue unavailable")}
	uc := NewWeatherUseCase("q", []string{"Paris"}, sender, &fakeWeatherGateway{}, &fakeDocumentGateway{})

	if _, err := uc.RefreshTrackedLocations(context.Background(), "req"); err == nil {
		t.Error("expected error when the batch cannot be sent")
	}
}

func TestRefreshTrackedLocationsInlineWithoutQueue(t *testing.T) {
	dbGateway := &fakeDocumentGateway{}
	uc := NewWeatherUseCase("q", []string{"Paris", "Tokyo"}, nil, &fakeWeatherGateway{}, dbGateway)

	result, err := uc.RefreshTrackedLocations(context.Background(), "req")
	if err != nil {
		t.Fatalf("RefreshTrackedLocations() error = %v", err)
	}
	if result.Enqueued != 2 || len(dbGateway.created) != 2 {
		t.Errorf("result = %+v, created = %d", result, len(dbGateway.created))
	}
}

func TestRefreshTrackedLocationsNothingConfigured(t *testing.T) {
	sender := &fakeSender{}
	uc := NewWeatherUseCase("q", nil, sender, &fakeWeatherGateway{}, &fakeDocumentGateway{})

	result, err := uc.RefreshTrackedLocations(context.Background(), "req")
	if err != nil || result != (model.RefreshResult{}) || sender.messages != nil {
		t.Errorf("result = %+v, err = %v", result, err)
	}
}
