package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"weather-api/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg *types.Message) error {
	return f(ctx, msg)
}

// Handler defines an interface that processes a SQS Message
type Handler interface {
	HandleMessage(ctx context.Context, msg *types.Message) error
}

// ConsumerClient defines the SQS operations used by Worker
type ConsumerClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// LogLevel represents the logging level for the Worker
type LogLevel int

const (
	// Silent logs everything at debug level only
	Silent LogLevel = iota
	// ErrorLevel logs only errors
	ErrorLevel
	// InfoLevel logs informational and error messages
	InfoLevel
)

// Status is the health state of a worker
type Status string

const (
	StatusUp      Status = "UP"
	StatusDown    Status = "DOWN"
	StatusUnknown Status = "UNKNOWN"
)

// maxConsecutiveReceiveErrors marks a running worker as down
const maxConsecutiveReceiveErrors = 3

// HealthStatus is the result of Worker.HealthCheck
type HealthStatus struct {
	Status  Status
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	LogLevel            LogLevel
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           ConsumerClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	logLevel            LogLevel
	handler             Handler

	running           atomic.Bool
	processed         atomic.Int64
	failed            atomic.Int64
	consecutiveErrors atomic.Int64
	lastReceive       atomic.Int64
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//   - LogLevel: Silent
//
// Validations:
//   - MaxNumberOfMessages must be between 1 and 10.
//   - WaitTimeSeconds must be between 1 and 20.
//   - PoolSize must be greater than 0.
func NewWorker(ctx context.Context, sqsClient ConsumerClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1
	logLevel := Silent

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		logLevel = config.LogLevel
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler must not be nil")
	}

	result, err := sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}
	if result.QueueUrl == nil {
		return nil, fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		logLevel:            logLevel,
		handler:             handler,
	}, nil
}

// Start begins polling messages and processing them concurrently.
// It spawns PoolSize pollers and blocks until ctx is canceled and
// every in-flight message has been handled.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	var pollers sync.WaitGroup
	var handlers sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		pollers.Add(1)
		go func() {
			defer pollers.Done()
			w.pollMessages(ctx, &handlers)
		}()
	}

	pollers.Wait()
	handlers.Wait()
}

func (w *Worker) pollMessages(ctx context.Context, handlers *sync.WaitGroup) {
	for {
		if ctx.Err() != nil {
			return
		}

		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &w.queueURL,
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.consecutiveErrors.Add(1)
			w.logf(ErrorLevel, "failed to receive messages from %s: %v", w.queueName, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		w.consecutiveErrors.Store(0)
		w.lastReceive.Store(time.Now().UnixMilli())

		for i := range output.Messages {
			msg := output.Messages[i]
			handlers.Add(1)
			go func() {
				defer handlers.Done()
				w.handleMessage(context.WithoutCancel(ctx), &msg)
			}()
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg *types.Message) {
	if msg == nil {
		return
	}

	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		w.logf(ErrorLevel, "error processing message ID %s: %v", safeMessageID(msg), err)
		return
	}
	w.processed.Add(1)

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		w.logf(ErrorLevel, "failed to delete message ID %s: %v", safeMessageID(msg), err)
	} else {
		w.logf(InfoLevel, "successfully deleted message ID %s", safeMessageID(msg))
	}
}

// HealthCheck reports whether the worker is polling and receiving without errors
func (w *Worker) HealthCheck() HealthStatus {
	details := map[string]string{
		"queue":     w.queueName,
		"running":   strconv.FormatBool(w.running.Load()),
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if last := w.lastReceive.Load(); last > 0 {
		details["last_receive"] = time.UnixMilli(last).UTC().Format(time.RFC3339)
	}

	status := StatusUp
	switch {
	case !w.running.Load():
		status = StatusDown
	case w.consecutiveErrors.Load() >= maxConsecutiveReceiveErrors:
		status = StatusDown
		details["consecutive_errors"] = strconv.FormatInt(w.consecutiveErrors.Load(), 10)
	}

	return HealthStatus{Status: status, Details: details}
}

func (w *Worker) logf(level LogLevel, format string, v ...interface{}) {
	if w.logLevel == Silent {
		log.Debugf(format, v...)
	}
	if level == ErrorLevel && (w.logLevel == ErrorLevel || w.logLevel == InfoLevel) {
		log.Errorf(format, v...)
	}
	if level == InfoLevel && w.logLevel == InfoLevel {
		log.Infof(format, v...)
	}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
