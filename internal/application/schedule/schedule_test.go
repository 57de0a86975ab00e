package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/model"
	"weather-api/pkg/redis"
)

type fakeWeatherUseCase struct {
	requestIDs []string
}

func (f *fakeWeatherUseCase) Ingest(context.Context, string) (*entity.WeatherDocument, error) {
	return nil, nil
}

func (f *fakeWeatherUseCase) RefreshTrackedLocations(_ context.Context, requestID string) (model.RefreshResult, error) {
	f.requestIDs = append(f.requestIDs, requestID)
	return model.RefreshResult{Enqueued: 3}, nil
}

type fakeRecordUseCase struct {
	maxAges []time.Duration
	err     error
}

func (f *fakeRecordUseCase) List(context.Context) ([]entity.WeatherDocument, error) { return nil, nil }
func (f *fakeRecordUseCase) Search(context.Context, model.SearchCriteria) ([]entity.MergedRecordGroup, error) {
	return nil, nil
}
func (f *fakeRecordUseCase) CreateCustom(context.Context, model.CreateCustomRecordDTO) (*entity.WeatherDocument, error) {
	return nil, nil
}
func (f *fakeRecordUseCase) UpdateEntry(context.Context, string, model.UpdateEntryDTO) (*entity.WeatherDocument, []string, error) {
	return nil, nil, nil
}
func (f *fakeRecordUseCase) Delete(context.Context, string) error { return nil }
func (f *fakeRecordUseCase) DeleteGroup(context.Context, []string) (model.DeleteGroupResult, error) {
	return model.DeleteGroupResult{}, nil
}
func (f *fakeRecordUseCase) PurgeOlderThan(_ context.Context, maxAge time.Duration) (int64, error) {
	f.maxAges = append(f.maxAges, maxAge)
	return 4, f.err
}

func TestExecuteScheduledTaskUsesFreshRequestIDs(t *testing.T) {
	useCase := &fakeWeatherUseCase{}
	scheduler := NewIngestScheduler(useCase, nil, IngestSchedulerConfig{CronExpression: "0 */6 * * *"})

	scheduler.ExecuteScheduledTask(context.Background())
	scheduler.ExecuteScheduledTask(context.Background())

	if len(useCase.requestIDs) != 2 || useCase.requestIDs[0] == useCase.requestIDs[1] {
		t.Errorf("request ids = %v", useCase.requestIDs)
	}
}

func TestIngestSchedulerDefaults(t *testing.T) {
	scheduler := NewIngestScheduler(&fakeWeatherUseCase{}, nil, IngestSchedulerConfig{CronExpression: "@hourly"})
	if scheduler.config.LockTTL != 10*time.Minute || scheduler.config.RefreshInterval != time.Minute {
		t.Errorf("config = %+v", scheduler.config)
	}
}

func TestInitIngestScheduleTasksRejectsInvalidCron(t *testing.T) {
	scheduler := NewIngestScheduler(&fakeWeatherUseCase{}, nil, IngestSchedulerConfig{CronExpression: "every day"})
	if err := scheduler.InitIngestScheduleTasks(context.Background()); err == nil {
		t.Error("invalid cron expression must fail")
	}
}

func TestInitIngestScheduleTasksStopsWithContext(t *testing.T) {
	scheduler := NewIngestScheduler(&fakeWeatherUseCase{}, nil, IngestSchedulerConfig{CronExpression: "@hourly"})
	ctx, cancel := context.WithCancel(context.Background())

	if err := scheduler.InitIngestScheduleTasks(ctx); err != nil {
		t.Fatalf("InitIngestScheduleTasks() error = %v", err)
	}
	cancel()
}

func TestRetentionPurge(t *testing.T) {
	useCase := &fakeRecordUseCase{}
	scheduler, err := NewRetentionScheduler(useCase, nil, 72*time.Hour, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer scheduler.Stop()

	if scheduler.interval != time.Hour {
		t.Errorf("default interval = %s", scheduler.interval)
	}

	scheduler.Purge(context.Background())
	useCase.err = errors.New("pq: connection refused")
	scheduler.Purge(context.Background())

	if len(useCase.maxAges) != 2 || useCase.maxAges[0] != 72*time.Hour {
		t.Errorf("max ages = %v", useCase.maxAges)
	}
}

func TestRetentionDisabled(t *testing.T) {
	useCase := &fakeRecordUseCase{}
	scheduler, err := NewRetentionScheduler(useCase, nil, 0, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer scheduler.Stop()

	if err := scheduler.InitRetentionScheduleTasks(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(scheduler.scheduler.Jobs()) != 0 {
		t.Error("no job must be scheduled when max age is zero")
	}
}

func TestRetentionPurgeSkippedWithoutLock(t *testing.T) {
	cfg := redis.NewRedisConfig()
	cfg.Port = 1
	cfg.DialTimeout = 50 * time.Millisecond
	client, err := redis.NewClient(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	useCase := &fakeRecordUseCase{}
	scheduler, err := NewRetentionScheduler(useCase, client, time.Hour, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer scheduler.Stop()

	scheduler.Purge(context.Background())

	if len(useCase.maxAges) != 0 {
		t.Errorf("purge ran without holding the lock: %v", useCase.maxAges)
	}
}
