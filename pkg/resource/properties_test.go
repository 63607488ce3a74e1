package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitResolvesEnvPlaceholders(t *testing.T) {
	t.Setenv("RESOURCE_TEST_PORT", "9090")
	t.Setenv("RESOURCE_TEST_CITY", "Chennai")

	path := filepath.Join(t.TempDir(), "application.yml")
	content := `app:
  server:
    port: ${RESOURCE_TEST_PORT:8080}
    context-path: ${RESOURCE_TEST_UNSET:/weather-story}
  secret: ${RESOURCE_TEST_SECRET_UNSET}
  name: plain-value
  timeout: 20s
  enabled: true
  cities:
    - ${RESOURCE_TEST_CITY:Delhi}
    - Mumbai
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if got := GetString("app.server.port"); got != "9090" {
		t.Errorf("expected port from env, got %q", got)
	}
	if got := GetString("app.server.context-path"); got != "/weather-story" {
		t.Errorf("expected default context path, got %q", got)
	}
	if got := GetString("app.secret"); got != "" {
		t.Errorf("expected unset secret without default to be empty, got %q", got)
	}
	if got := GetString("app.name"); got != "plain-value" {
		t.Errorf("expected plain value to survive, got %q", got)
	}
	if got := GetDuration("app.timeout"); got != 20*time.Second {
		t.Errorf("expected 20s timeout, got %v", got)
	}
	if !GetBool("app.enabled") {
		t.Error("expected enabled flag to be true")
	}

	cities := GetStringSlice("app.cities")
	if len(cities) != 2 || cities[0] != "Chennai" || cities[1] != "Mumbai" {
		t.Errorf("unexpected cities: %v", cities)
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing properties file")
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("RESOURCE_TEST_SET", "value")

	tests := []struct {
		name  string
		input string
		want  any
	}{
		{name: "plain", input: "abc", want: "abc"},
		{name: "env set", input: "${RESOURCE_TEST_SET:other}", want: "value"},
		{name: "env default", input: "${RESOURCE_TEST_NOPE:fallback}", want: "fallback"},
		{name: "env no default", input: "${RESOURCE_TEST_NOPE}", want: ""},
		{name: "embedded not resolved", input: "x-${RESOURCE_TEST_SET}", want: "x-${RESOURCE_TEST_SET}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.input); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
