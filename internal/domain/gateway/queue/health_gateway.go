package queue

import (
	"weather-api/internal/domain/model"
	"weather-api/pkg/sqs"
)

// WorkerHealth is implemented by *sqs.Worker
type WorkerHealth interface {
	HealthCheck() sqs.HealthStatus
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealth)
	UnregisterWorker(name string)
}
