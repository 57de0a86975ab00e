package numberutils

import (
	"math"
	"testing"
)

func TestIsDigits(t *testing.T) {
	if !IsDigits("10001") {
		t.Error("IsDigits(10001) = false")
	}
	for _, value := range []string{"1000a", "", "１２３", "-1"} {
		if IsDigits(value) {
			t.Errorf("IsDigits(%q) = true", value)
		}
	}
}

func TestToIntWithDefaultAndClamp(t *testing.T) {
	if got := ToIntWithDefault("7", 3); got != 7 {
		t.Errorf("ToIntWithDefault(7) = %d", got)
	}
	if got := ToIntWithDefault("x", 3); got != 3 {
		t.Errorf("ToIntWithDefault(x) = %d", got)
	}
	if got := ClampInt(25, 1, 10); got != 10 {
		t.Errorf("ClampInt(25) = %d", got)
	}
	if got := ClampInt(-1, 1, 10); got != 1 {
		t.Errorf("ClampInt(-1) = %d", got)
	}
}

func TestFloatHelpers(t *testing.T) {
	tests := []struct {
		value        float64
		lower, upper float64
		want         bool
	}{
		{100, -100, 100, true},
		{-100, -100, 100, true},
		{100.01, -100, 100, false},
		{math.NaN(), -100, 100, false},
		{math.Inf(1), 0, math.MaxFloat64, false},
	}
	for _, tt := range tests {
		if got := IsFloatInRange(tt.value, tt.lower, tt.upper); got != tt.want {
			t.Errorf("IsFloatInRange(%v, %v, %v) = %v, want %v", tt.value, tt.lower, tt.upper, got, tt.want)
		}
	}

	if f, ok := ToFloat64("22.5"); !ok || f != 22.5 {
		t.Errorf("ToFloat64(22.5) = %v, %v", f, ok)
	}
	if _, ok := ToFloat64("NaN"); ok {
		t.Error("ToFloat64(NaN) accepted")
	}
}
