package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"weather-api/configs"
	"weather-api/docs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	"weather-api/internal/application/processor"
	"weather-api/internal/application/schedule"
	apigateway "weather-api/internal/domain/gateway/api"
	cachegateway "weather-api/internal/domain/gateway/cache"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/gateway/queue"
	"weather-api/internal/domain/usecase/export"
	"weather-api/internal/domain/usecase/health"
	"weather-api/internal/domain/usecase/record"
	"weather-api/internal/domain/usecase/video"
	"weather-api/internal/domain/usecase/weather"
	"weather-api/internal/infra/aws"
	"weather-api/internal/infra/cache"
	"weather-api/internal/infra/database/gorm"
	"weather-api/internal/infra/database/sqlc"
	httpclient "weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/metrics"
	"weather-api/pkg/msg"
	"weather-api/pkg/redis"
	"weather-api/pkg/resource"
	"weather-api/pkg/sqs"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Weather API
// @version 1.0
// @description Forecast lookup, merged record search and record management.
// @BasePath /weather-api
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: resource.GetStringList("app.server.allowed-origins"),
	}))
	middleware.SetupRequestLogger(e)
	e.Use(metrics.Middleware())
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	api := e.Group(contextPath)

	documentGateway, dbHealthGateway, closeDB := connectDatabase(ctx)
	defer closeDB()

	redisClient := connectRedis(ctx)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var queueSender queue.Sender
	var sqsClient sqs.ConsumerClient
	if resource.GetBool("app.queue.enabled") {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			log.Fatal("Failed to configure AWS", zap.Error(err))
		}
		client := aws.NewSqsClient(awsConfig)
		sqsClient = client
		queueSender = aws.NewSQSSenderAdapter(client)
	}

	// Init Gateways
	weatherGateway := apigateway.NewWeatherGateway(
		resource.GetString("app.integration.openweathermap.url"),
		resource.GetString("app.integration.openweathermap.api-key"),
		clientOptions("openweathermap"),
	)
	videoGateway := apigateway.NewVideoGateway(
		resource.GetString("app.integration.youtube.url"),
		resource.GetString("app.integration.youtube.api-key"),
		clientOptions("youtube"),
	)
	queueHealthGateway := queue.NewQueueHealthGateway()
	cacheHealthGateway := cachegateway.NewRedisHealthGateway(redisClient)

	var videoCache video.Cache
	if redisClient != nil {
		videoCache = cache.NewVideosCache(redisClient)
	}

	// Init UseCase
	queueName := resource.GetString("app.queue.ingest.name")
	weatherUseCase := weather.NewWeatherUseCase(queueName, resource.GetStringList("app.ingest.locations"), queueSender, weatherGateway, documentGateway)
	recordUseCase := record.NewRecordUseCase(documentGateway)
	exportUseCase := export.NewExportUseCase(documentGateway)
	videoUseCase := video.NewVideoUseCase(videoGateway, videoCache, resource.GetInt("app.integration.youtube.max-results"))
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, queueHealthGateway, cacheHealthGateway)

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, weatherUseCase, recordUseCase).InitWeatherRoutes()
	controller.NewExportController(api, exportUseCase).InitExportRoutes()
	controller.NewVideoController(api, videoUseCase).InitVideoRoutes()

	// Init Workers
	var workers sync.WaitGroup
	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, processor.NewIngestProcessor(weatherUseCase), &sqs.WorkerConfig{
			MaxNumberOfMessages: resource.GetInt32("app.queue.ingest.max-messages"),
			WaitTimeSeconds:     resource.GetInt32("app.queue.ingest.wait-time-seconds"),
			PoolSize:            resource.GetInt("app.queue.ingest.pool-size"),
			LogLevel:            sqs.ErrorLevel,
		})
		if err != nil {
			log.Fatal("Failed to create ingest worker", zap.Error(err))
		}
		queueHealthGateway.RegisterWorker(queueName, worker)

		workers.Add(1)
		go func() {
			defer workers.Done()
			worker.Start(ctx)
		}()
	}

	// Init Schedule
	if resource.GetBool("app.ingest.schedule.enabled") {
		ingestScheduler := schedule.NewIngestScheduler(weatherUseCase, redisClient, schedule.IngestSchedulerConfig{
			CronExpression:  resource.GetString("app.ingest.schedule.cron"),
			LockTTL:         time.Duration(resource.GetInt("app.ingest.schedule.lock-ttl")) * time.Second,
			RefreshInterval: time.Duration(resource.GetInt("app.ingest.schedule.refresh-interval")) * time.Second,
		})
		if err := ingestScheduler.InitIngestScheduleTasks(ctx); err != nil {
			log.Fatal("Failed to schedule tracked locations refresh", zap.Error(err))
		}
	}

	retentionScheduler, err := schedule.NewRetentionScheduler(recordUseCase, redisClient,
		resource.GetDuration("app.records.retention.max-age"),
		resource.GetDuration("app.records.retention.interval"))
	if err != nil {
		log.Fatal("Failed to create retention scheduler", zap.Error(err))
	}
	if err = retentionScheduler.InitRetentionScheduleTasks(ctx); err != nil {
		log.Fatal("Failed to schedule record retention", zap.Error(err))
	}

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started"), zap.String("port", resource.GetString("app.server.port")))
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	workers.Wait()
}

// connectDatabase selects the document store by app.db.driver
func connectDatabase(ctx context.Context) (db.WeatherDocumentGateway, db.HealthDBGateway, func()) {
	switch driver := resource.GetString("app.db.driver"); driver {
	case "gorm":
		session, err := gorm.Connect(ctx)
		if err != nil {
			log.Fatal("Failed to connect database", zap.String("driver", driver), zap.Error(err))
		}
		closeDB := func() {
			if sqlDB, err := session.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return db.NewGormWeatherDocumentGateway(session), db.NewGormHealthDBGateway(session), closeDB
	case "sqlc", "":
		conn, err := sqlc.Connect(ctx)
		if err != nil {
			log.Fatal("Failed to connect database", zap.String("driver", "sqlc"), zap.Error(err))
		}
		return db.NewSQLCWeatherDocumentGateway(conn), db.NewSQLCHealthDBGateway(conn), func() { _ = conn.Close() }
	default:
		log.Fatalf("Unsupported database driver: %s", driver)
		return nil, nil, nil
	}
}

// connectRedis returns nil when redis is disabled
func connectRedis(ctx context.Context) *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	client, err := cache.Connect()
	if err != nil {
		log.Fatal("Failed to configure redis", zap.Error(err))
	}
	if err = client.Ping(ctx); err != nil {
		log.Warn("Redis is not reachable, cache calls will fall through", zap.Error(err))
	}
	return client
}

func clientOptions(name string) httpclient.ClientOptions {
	prefix := "app.integration." + name
	return httpclient.ClientOptions{
		ReadTimeout:       resource.GetDuration(prefix + ".timeout"),
		DefaultHeaders:    map[string]string{"Accept": "application/json"},
		Backoff:           httpclient.NewBackoffConfig(),
		RequestsPerSecond: resource.GetFloat64(prefix + ".requests-per-second"),
		Burst:             resource.GetInt(prefix + ".burst"),
		CircuitBreaker: &httpclient.CircuitBreakerConfig{
			Name:    name,
			Timeout: 30 * time.Second,
		},
		Logger: httpclient.NewZapHTTPLogger(name),
	}
}
