package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"weather-story/pkg/resource"
)

func TestLoadApplicationProperties(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "weather-secret")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("SOCIAL_ENABLED", "false")

	if err := resource.Init("application.yml"); err != nil {
		t.Fatalf("init properties: %v", err)
	}
	config := Load()

	if config.Weather.APIKey != "weather-secret" || config.LLM.APIKey != "" {
		t.Fatalf("unexpected secrets %q %q", config.Weather.APIKey, config.LLM.APIKey)
	}
	if config.Social.Enabled {
		t.Fatal("expected posting to be disabled from env")
	}
	if config.Social.APIKey != "" {
		t.Fatal("secrets must not have literal defaults")
	}
	if config.Country != "India" || len(config.Cities) != 6 || config.Cities[0] != "Chennai" {
		t.Fatalf("unexpected cities %s %v", config.Country, config.Cities)
	}
	if config.Weather.Timeout != 20*time.Second || config.LLM.Timeout != 60*time.Second || config.Image.Timeout != 120*time.Second {
		t.Fatalf("unexpected timeouts %+v", config)
	}
	if config.LLM.Model != "llama-3.3-70b-versatile" || config.LLM.Temperature != 0.8 || config.LLM.MaxTokens != 200 {
		t.Fatalf("unexpected llm config %+v", config.LLM)
	}
	if config.Session.TTL != 30*time.Minute || config.Session.PurgeCron != "@every 5m" {
		t.Fatalf("unexpected session config %+v", config.Session)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DOTENV_TEST_NEW=from-file\nDOTENV_TEST_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("DOTENV_TEST_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_TEST_NEW") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if os.Getenv("DOTENV_TEST_NEW") != "from-file" || os.Getenv("DOTENV_TEST_SET") != "from-env" {
		t.Fatalf("unexpected env %q %q", os.Getenv("DOTENV_TEST_NEW"), os.Getenv("DOTENV_TEST_SET"))
	}
}
