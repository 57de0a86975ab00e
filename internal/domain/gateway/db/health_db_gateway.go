package db

import (
	"context"
	"strconv"

	"weather-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func downStatus(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}

func upStatus(driver string, documents int64) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message":   string(model.StatusUp),
			"driver":    driver,
			"documents": strconv.FormatInt(documents, 10),
		},
	}
}
