package schedule

import (
	"context"
	"errors"
	"time"

	"weather-api/internal/domain/usecase/weather"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	ingestLockKey       = "ingest"
	ingestLockNamespace = "weather_schedules"
)

// IngestSchedulerConfig holds configuration for the ingest scheduler
type IngestSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// IngestScheduler refreshes the tracked locations on a cron expression.
// With redis configured only the replica holding the lock schedules.
type IngestScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      IngestSchedulerConfig
}

func NewIngestScheduler(useCase weather.UseCase, redisClient *redis.Client, config IngestSchedulerConfig) *IngestScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Minute
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = time.Minute
	}

	return &IngestScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitIngestScheduleTasks starts the scheduler in background until ctx is done
func (s *IngestScheduler) InitIngestScheduleTasks(ctx context.Context) error {
	if _, err := cron.ParseStandard(s.config.CronExpression); err != nil {
		return err
	}

	go func() {
		if s.redisClient == nil {
			s.run(ctx, nil)
			return
		}

		lock := redis.NewScheduledTaskLock(s.redisClient, ingestLockKey, s.config.LockTTL, s.config.RefreshInterval, ingestLockNamespace)
		if err := lock.Lock(ctx); err != nil {
			log.Warn("Ingest scheduler lock is held elsewhere, this replica will not schedule", zap.String("lock", lock.Key()), zap.Error(err))
			return
		}
		defer func() {
			if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redis.ErrLockNotHeld) {
				log.Warn("Failed to release ingest scheduler lock", zap.Error(err))
			}
		}()

		s.run(ctx, lock.AutoRefresh(ctx))
	}()

	return nil
}

// run blocks until ctx is done or the lock refresh fails
func (s *IngestScheduler) run(ctx context.Context, refreshErrors <-chan error) {
	if _, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) }); err != nil {
		log.Errorf("Failed to initialize ingest scheduler, cron will not be started: %v", err)
		return
	}

	s.cron.Start()
	log.Infof("Ingest scheduler started with cron expression: %s", s.config.CronExpression)

	var err error
	select {
	case <-ctx.Done():
	case err = <-refreshErrors:
	}

	s.Stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Ingest scheduler stopped due to lock refresh failure: %v", err)
		return
	}
	log.Info("Ingest scheduler stopped gracefully")
}

// ExecuteScheduledTask enqueues every tracked location under a new request id
func (s *IngestScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.NewString()
	log.Info(msg.GetMessage("ingest.cron.start", requestID), zap.String("request_id", requestID))

	result, err := s.useCase.RefreshTrackedLocations(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("ingest.cron.error", requestID), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("ingest.cron.end", requestID, result.Enqueued, result.Failed),
		zap.String("request_id", requestID),
		zap.Int("enqueued", result.Enqueued),
		zap.Int("failed", result.Failed),
	)
}

// Stop waits for running jobs and stops the scheduler
func (s *IngestScheduler) Stop() {
	<-s.cron.Stop().Done()
}
