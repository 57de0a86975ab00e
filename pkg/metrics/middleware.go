package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware records HTTP request duration and count
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			path := normalizePath(c.Path())
			method := c.Request().Method

			httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(method, path, status).Inc()

			return nil
		}
	}
}

// Handler serves the default Prometheus registry
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// normalizePath keeps route patterns as labels to prevent high cardinality
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}
