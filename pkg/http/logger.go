package http

import (
	"go.uber.org/zap"

	"weather-api/pkg/log"
)

// HTTPLogger receives the lifecycle of every outgoing call. URLs arrive without their query string.
type HTTPLogger interface {
	LogRequest(url string)
	LogResponseSuccess(url string, httpStatus int, latency int64)
	// LogResponseError is called on transport errors (status 0) and non 2xx answers
	LogResponseError(url string, httpStatus int, latency int64, err error)
	LogRequestRetry(url string, httpStatus int, backoff int64, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger writes outgoing call logs through pkg/log.
type ZapHTTPLogger struct {
	client string
}

var _ HTTPLogger = (*ZapHTTPLogger)(nil)

// NewZapHTTPLogger creates a logger tagging every line with the client name
func NewZapHTTPLogger(client string) *ZapHTTPLogger {
	return &ZapHTTPLogger{client: client}
}

func (l *ZapHTTPLogger) LogRequest(url string) {
	log.Debug("Outgoing request",
		zap.String("client", l.client),
		zap.String("url", url))
}

func (l *ZapHTTPLogger) LogResponseSuccess(url string, httpStatus int, latency int64) {
	log.Info("Outgoing request finished",
		zap.String("client", l.client),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapHTTPLogger) LogResponseError(url string, httpStatus int, latency int64, err error) {
	log.Error("Outgoing request failed",
		zap.String("client", l.client),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapHTTPLogger) LogRequestRetry(url string, httpStatus int, backoff int64, err error, retryCount, maxRetries int) {
	log.Warn("Retrying outgoing request",
		zap.String("client", l.client),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("backoff_ms", backoff),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
