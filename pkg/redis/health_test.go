package redis

import (
	"context"
	"strings"
	"testing"
)

func TestHealthCheckKeyIsPerCall(t *testing.T) {
	first, second := healthCheckKey(), healthCheckKey()

	if !strings.HasPrefix(first, healthCheckKeyPrefix) || !strings.HasPrefix(second, healthCheckKeyPrefix) {
		t.Fatalf("keys %q, %q miss prefix %q", first, second, healthCheckKeyPrefix)
	}
	if first == second {
		t.Errorf("two checks share key %q", first)
	}
}

func TestHealthCheckWithoutClient(t *testing.T) {
	if err := HealthCheck(context.Background(), nil); err == nil {
		t.Error("expected error for nil client")
	}
}
