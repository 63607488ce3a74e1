package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"weather-story/pkg/resource"
)

type ServerConfig struct {
	ApplicationName string
	Port            string
	ContextPath     string
}

type SessionConfig struct {
	TTL          time.Duration
	Secret       string
	SecureCookie bool
	PurgeCron    string
}

type RedisConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Password  string
	Database  int
	KeyPrefix string
}

type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type LLMConfig struct {
	ProviderConfig
	Model       string
	Temperature float64
	MaxTokens   int
}

type ImageConfig struct {
	ProviderConfig
	Path string
}

type SocialConfig struct {
	Enabled           bool
	APIURL            string
	UploadURL         string
	Host              string
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
	Timeout           time.Duration
}

// EnvConfig is the resolved application configuration
type EnvConfig struct {
	Server  ServerConfig
	Country string
	Cities  []string
	Session SessionConfig
	Redis   RedisConfig
	Weather ProviderConfig
	LLM     LLMConfig
	Image   ImageConfig
	Social  SocialConfig
}

// LoadDotEnv loads the given .env files, or ./.env, into the process environment without
// overriding variables that are already set.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return err
		}
	}
	return godotenv.Load(files...)
}

// Load reads EnvConfig from the properties initialized by resource.Init
func Load() *EnvConfig {
	return &EnvConfig{
		Server: ServerConfig{
			ApplicationName: resource.GetString("app.name"),
			Port:            resource.GetString("app.server.port"),
			ContextPath:     resource.GetString("app.server.context-path"),
		},
		Country: resource.GetString("app.country"),
		Cities:  resource.GetStringSlice("app.cities"),
		Session: SessionConfig{
			TTL:          resource.GetDuration("app.session.ttl"),
			Secret:       resource.GetString("app.session.secret"),
			SecureCookie: resource.GetBool("app.session.secure-cookie"),
			PurgeCron:    resource.GetString("app.session.purge.cron"),
		},
		Redis: RedisConfig{
			Enabled:   resource.GetBool("app.redis.enabled"),
			Host:      resource.GetString("app.redis.host"),
			Port:      resource.GetInt("app.redis.port"),
			Password:  resource.GetString("app.redis.password"),
			Database:  resource.GetInt("app.redis.database"),
			KeyPrefix: resource.GetString("app.redis.key-prefix"),
		},
		Weather: provider("app.weather"),
		LLM: LLMConfig{
			ProviderConfig: provider("app.llm"),
			Model:          resource.GetString("app.llm.model"),
			Temperature:    resource.GetFloat64("app.llm.temperature"),
			MaxTokens:      resource.GetInt("app.llm.max-tokens"),
		},
		Image: ImageConfig{
			ProviderConfig: provider("app.image"),
			Path:           resource.GetString("app.image.path"),
		},
		Social: SocialConfig{
			Enabled:           resource.GetBool("app.social.enabled"),
			APIURL:            resource.GetString("app.social.api-url"),
			UploadURL:         resource.GetString("app.social.upload-url"),
			Host:              resource.GetString("app.social.host"),
			APIKey:            resource.GetString("app.social.api-key"),
			APISecret:         resource.GetString("app.social.api-secret"),
			AccessToken:       resource.GetString("app.social.access-token"),
			AccessTokenSecret: resource.GetString("app.social.access-token-secret"),
			Timeout:           resource.GetDuration("app.social.timeout"),
		},
	}
}

func provider(prefix string) ProviderConfig {
	return ProviderConfig{
		BaseURL: resource.GetString(prefix + ".base-url"),
		APIKey:  resource.GetString(prefix + ".api-key"),
		Timeout: resource.GetDuration(prefix + ".timeout"),
	}
}
