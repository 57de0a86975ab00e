package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-api/pkg/log"
	"weather-api/pkg/msg"
)

var skippedPaths = []string{"/health", "/metrics", "/swagger/"}

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipRequestLog,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			if v.Error == nil && v.Status < 500 {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
				return nil
			}

			reason := http.StatusText(v.Status)
			if v.Error != nil {
				reason = v.Error.Error()
				fields = append(fields, zap.Error(v.Error))
			}
			log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, reason), fields...)
			return nil
		},
	}))
}

func skipRequestLog(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, skipped := range skippedPaths {
		if strings.Contains(path, skipped) {
			return true
		}
	}
	return false
}
