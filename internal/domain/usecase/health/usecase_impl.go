package health

import (
	"context"

	"weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	cacheGateway cache.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway, cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		cacheGateway: cacheGateway,
	}
}

// CheckHealth is UP when the database is UP and no optional component is DOWN
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)

	queueHealth := model.UnknownComponent("Queue disabled")
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health()
	}

	cacheHealth := model.UnknownComponent("Cache disabled")
	if useCase.cacheGateway != nil {
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || queueHealth.Status == model.StatusDown || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Queue:    queueHealth,
		Cache:    cacheHealth,
	}
}
