package resource

import "testing"

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("WEATHER_TEST_PORT", "9090")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain value", "plain", "plain"},
		{"env present", "${WEATHER_TEST_PORT:5050}", "9090"},
		{"env missing uses default", "${WEATHER_TEST_MISSING:5050}", "5050"},
		{"env missing empty default", "${WEATHER_TEST_MISSING:}", ""},
		{"env missing no default", "${WEATHER_TEST_MISSING}", ""},
		{"default with spaces", "${WEATHER_TEST_MISSING:0 */6 * * *}", "0 */6 * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.value); got != tt.want {
				t.Fatalf("resolveEnvVariable(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestEmbeddedDefaultsLoaded(t *testing.T) {
	if got := GetString("app.server.context-path"); got == "" {
		t.Fatal("expected context path to be loaded from defaults")
	}
	if got := GetInt("app.integration.youtube.max-results"); got != 3 {
		t.Fatalf("expected youtube max results 3, got %d", got)
	}
}

func TestGetStringList(t *testing.T) {
	Get("app") // ensure defaults are loaded before overriding
	setForTest(t, "app.test.locations", " Tallahassee, Paris ,,32301")

	got := GetStringList("app.test.locations")
	want := []string{"Tallahassee", "Paris", "32301"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func setForTest(t *testing.T, key string, value any) {
	t.Helper()
	previous := Get(key)
	Set(key, value)
	t.Cleanup(func() { Set(key, previous) })
}
