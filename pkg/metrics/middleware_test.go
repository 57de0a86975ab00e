package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/weather/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	e.GET("/metrics", Handler())
	return e
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/weather/123", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/weather/:id", "200")); got < 1 {
		t.Errorf("expected http_requests_total >= 1, got %f", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMiddlewareRecordsErrorStatus(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/missing", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/missing", "404")); got < 1 {
		t.Errorf("expected http_requests_total for 404 >= 1, got %f", got)
	}
}

func TestHandlerExposesDomainMetrics(t *testing.T) {
	MergedGroups.Observe(2)
	DeleteFailuresTotal.Inc()

	e := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, name := range []string{"weather_api_merged_groups", "weather_api_group_delete_failures_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in metrics output", name)
		}
	}
}

func TestOutcome(t *testing.T) {
	if Outcome(nil) != "success" || Outcome(echo.ErrNotFound) != "error" {
		t.Error("unexpected outcome labels")
	}
}
