package queue

import (
	"sort"
	"strconv"
	"sync"

	"weather-api/internal/domain/model"
	"weather-api/pkg/sqs"
)

type QueueHealthGateway struct {
	workers map[string]WorkerHealth
	mutex   sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{
		workers: make(map[string]WorkerHealth),
	}
}

func (gateway *QueueHealthGateway) RegisterWorker(name string, worker WorkerHealth) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *QueueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

// Health is UNKNOWN with no workers and DOWN when any registered worker is down
func (gateway *QueueHealthGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		status := model.UnknownComponent("No workers registered")
		status.Details["workers_total"] = "0"
		return status
	}

	names := make([]string, 0, len(gateway.workers))
	for name := range gateway.workers {
		names = append(names, name)
	}
	sort.Strings(names)

	overallStatus := model.StatusUp
	details := make(map[string]string)
	workersUp := 0
	workersDown := 0

	for _, name := range names {
		workerHealth := gateway.workers[name].HealthCheck()

		if workerHealth.Status == sqs.StatusUp {
			workersUp++
			details[name+"_status"] = string(model.StatusUp)
		} else {
			workersDown++
			overallStatus = model.StatusDown
			details[name+"_status"] = string(model.StatusDown)
		}

		for key, value := range workerHealth.Details {
			details[name+"_"+key] = value
		}
	}

	details["workers_total"] = strconv.Itoa(len(gateway.workers))
	details["workers_up"] = strconv.Itoa(workersUp)
	details["workers_down"] = strconv.Itoa(workersDown)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
