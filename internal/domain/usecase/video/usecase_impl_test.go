package video

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
)

type fakeVideoGateway struct {
	calls      int
	query      string
	maxResults int
	err        error
}

func (f *fakeVideoGateway) SearchVideos(_ context.Context, query string, maxResults int) ([]entity.Video, error) {
	f.calls++
	f.query = query
	f.maxResults = maxResults
	if f.err != nil {
		return nil, f.err
	}
	return []entity.Video{{ID: entity.VideoID{VideoID: "abc"}}}, nil
}

// memoryCache behaves like the redis cache: values round-trip through JSON
type memoryCache struct {
	values map[string][]byte
}

func (m *memoryCache) GetOrSet(_ context.Context, key string, dest interface{}, setter func() (interface{}, error)) (bool, error) {
	if data, ok := m.values[key]; ok {
		return true, json.Unmarshal(data, dest)
	}
	value, err := setter()
	if err != nil {
		return false, err
	}
	data, _ := json.Marshal(value)
	m.values[key] = data
	return false, json.Unmarshal(data, dest)
}

func TestSearchTravelVideosDefaults(t *testing.T) {
	gateway := &fakeVideoGateway{}
	uc := NewVideoUseCase(gateway, nil, 0)

	videos, err := uc.SearchTravelVideos(context.Background(), " Paris ", 0)
	if err != nil {
		t.Fatalf("SearchTravelVideos() error = %v", err)
	}
	if len(videos) != 1 || gateway.query != "Paris travel" || gateway.maxResults != 3 {
		t.Errorf("query = %q, max = %d, videos = %+v", gateway.query, gateway.maxResults, videos)
	}

	if _, err := uc.SearchTravelVideos(context.Background(), "Paris", 50); err != nil || gateway.maxResults != MaxResultsLimit {
		t.Errorf("max results not capped: %d", gateway.maxResults)
	}
}

func TestSearchTravelVideosUsesCache(t *testing.T) {
	gateway := &fakeVideoGateway{}
	uc := NewVideoUseCase(gateway, &memoryCache{values: map[string][]byte{}}, 3)

	for i := 0; i < 2; i++ {
		videos, err := uc.SearchTravelVideos(context.Background(), "Paris", 3)
		if err != nil || len(videos) != 1 || videos[0].ID.VideoID != "abc" {
			t.Fatalf("call %d: videos = %+v, err = %v", i, videos, err)
		}
	}
	if _, err := uc.SearchTravelVideos(context.Background(), "PARIS", 3); err != nil {
		t.Fatal(err)
	}
	if gateway.calls != 1 {
		t.Errorf("gateway calls = %d, want 1", gateway.calls)
	}
}

func TestSearchTravelVideosErrors(t *testing.T) {
	uc := NewVideoUseCase(&fakeVideoGateway{}, nil, 3)
	if _, err := uc.SearchTravelVideos(context.Background(), "", 3); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("empty location error = %v", err)
	}

	uc = NewVideoUseCase(&fakeVideoGateway{err: errors.New("quota")}, &memoryCache{values: map[string][]byte{}}, 3)
	_, err := uc.SearchTravelVideos(context.Background(), "Paris", 3)

	var upstreamErr *model.UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Error() == "" || upstreamErr.Message != "YouTube fetch failed" {
		t.Errorf("error = %v", err)
	}
}
