package schedule

import (
	"context"
	"fmt"
	"time"

	"weather-api/internal/domain/usecase/record"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	retentionLockKey = "weather_schedules::retention"
	retentionLockTTL = 5 * time.Minute
)

// RetentionScheduler purges documents older than maxAge every interval.
// With redis configured a purge only runs on the replica that takes the lock.
type RetentionScheduler struct {
	scheduler   gocron.Scheduler
	useCase     record.UseCase
	redisClient *redis.Client
	maxAge      time.Duration
	interval    time.Duration
}

func NewRetentionScheduler(useCase record.UseCase, redisClient *redis.Client, maxAge, interval time.Duration) (*RetentionScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create retention scheduler: %w", err)
	}
	if interval <= 0 {
		interval = time.Hour
	}

	return &RetentionScheduler{
		scheduler:   scheduler,
		useCase:     useCase,
		redisClient: redisClient,
		maxAge:      maxAge,
		interval:    interval,
	}, nil
}

// InitRetentionScheduleTasks starts the purge job, a zero max age leaves it disabled
func (s *RetentionScheduler) InitRetentionScheduleTasks(ctx context.Context) error {
	if s.maxAge <= 0 {
		log.Info("Record retention disabled")
		return nil
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.Purge(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule retention job: %w", err)
	}

	s.scheduler.Start()
	log.Infof("Record retention scheduled every %s for documents older than %s", s.interval, s.maxAge)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Purge deletes the documents older than the configured max age
func (s *RetentionScheduler) Purge(ctx context.Context) {
	if s.redisClient == nil {
		s.purge(ctx)
		return
	}

	err := redis.LockWithFunc(ctx, s.redisClient, retentionLockKey, &redis.LockOptions{TTL: retentionLockTTL}, func() error {
		s.purge(ctx)
		return nil
	})
	if err != nil {
		log.Warn("Skipping record retention, lock not acquired", zap.String("lock", retentionLockKey), zap.Error(err))
	}
}

func (s *RetentionScheduler) purge(ctx context.Context) {
	log.Info(msg.GetMessage("records.retention.start"))

	removed, err := s.useCase.PurgeOlderThan(ctx, s.maxAge)
	if err != nil {
		log.Error(msg.GetMessage("records.retention.error"), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("records.retention.end", removed), zap.Int64("removed", removed))
}

func (s *RetentionScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("Retention scheduler shutdown: %v", err)
	}
}
