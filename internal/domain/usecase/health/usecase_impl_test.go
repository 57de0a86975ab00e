package health

import (
	"context"
	"testing"

	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
)

type stubDB struct{ status model.HealthStatus }

func (s stubDB) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

type stubCache struct{ status model.HealthStatus }

func (s stubCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		db    model.HealthStatus
		cache model.HealthStatus
		want  model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"cache unknown", model.StatusUp, model.StatusUnknown, model.StatusUp},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusDown},
		{"database down", model.StatusDown, model.StatusUp, model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHealthUseCase(stubDB{tt.db}, queue.NewQueueHealthGateway(), stubCache{tt.cache})
			response := uc.CheckHealth(context.Background())
			if response.Status != tt.want {
				t.Errorf("status = %s, want %s", response.Status, tt.want)
			}
			if response.Queue.Status != model.StatusUnknown {
				t.Errorf("queue without workers = %s, want UNKNOWN", response.Queue.Status)
			}
		})
	}
}

func TestCheckHealthOptionalComponentsMissing(t *testing.T) {
	uc := NewHealthUseCase(stubDB{model.StatusUp}, nil, nil)
	response := uc.CheckHealth(context.Background())
	if response.Status != model.StatusUp || response.Cache.Status != model.StatusUnknown {
		t.Errorf("response = %+v", response)
	}
}
