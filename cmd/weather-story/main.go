package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-story/configs"
	"weather-story/docs"
	"weather-story/internal/application/controller"
	"weather-story/internal/application/middleware"
	"weather-story/internal/application/schedule"
	"weather-story/internal/application/view"
	"weather-story/internal/domain/gateway/api"
	"weather-story/internal/domain/gateway/session"
	"weather-story/internal/domain/gateway/storage"
	"weather-story/internal/domain/usecase/health"
	"weather-story/internal/domain/usecase/image"
	"weather-story/internal/domain/usecase/narrative"
	"weather-story/internal/domain/usecase/social"
	"weather-story/internal/domain/usecase/story"
	"weather-story/internal/domain/usecase/weather"
	"weather-story/pkg/http"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
	"weather-story/pkg/redis"
	"weather-story/pkg/resource"
)

// @title Weather Story API
// @version 1.0
// @description Generates short weather stories with an image for Indian cities and optionally posts them.
// @BasePath /weather-story
func main() {
	defer log.Sync()

	if err := configs.LoadDotEnv(); err != nil {
		log.Info(msg.GetMessage("app.config.dotenv-skipped", err))
	}
	if err := resource.Init(resource.Path()); err != nil {
		log.Fatal(err.Error())
	}
	config := configs.Load()

	log.Info(msg.GetMessage("app.start"), zap.String("application", config.Server.ApplicationName))

	// Init Gateways
	socialCredentials := api.SocialCredentials{
		APIKey:            config.Social.APIKey,
		APISecret:         config.Social.APISecret,
		AccessToken:       config.Social.AccessToken,
		AccessTokenSecret: config.Social.AccessTokenSecret,
	}
	weatherGateway := api.NewWeatherGateway(config.Weather.BaseURL, config.Weather.APIKey, clientOptions("weather", config.Weather.Timeout))
	llmGateway := api.NewLLMGateway(config.LLM.BaseURL, config.LLM.APIKey, clientOptions("llm", config.LLM.Timeout))
	imageGateway := api.NewImageGateway(config.Image.BaseURL, clientOptions("image", config.Image.Timeout))
	socialGateway := api.NewSocialGateway(config.Social.APIURL, config.Social.UploadURL, socialCredentials, clientOptions("social", config.Social.Timeout))
	imageStorage := storage.NewImageGateway(afero.NewOsFs(), config.Image.Path)

	generationGateway, redisClient := newGenerationGateway(config.Redis)

	// Init UseCase
	storyConfig := story.Config{
		Country:       config.Country,
		Cities:        config.Cities,
		TTL:           config.Session.TTL,
		WeatherAPIKey: config.Weather.APIKey,
		LLMAPIKey:     config.LLM.APIKey,
	}
	capabilities := story.Capabilities{Posting: config.Social.Enabled}

	storyUseCase := story.NewStoryUseCase(
		storyConfig,
		capabilities,
		weather.NewWeatherUseCase(config.Country, weatherGateway),
		narrative.NewNarrativeUseCase(config.LLM.Model, config.LLM.Temperature, config.LLM.MaxTokens, llmGateway),
		image.NewImageUseCase(imageGateway, imageStorage),
		social.NewSocialUseCase(config.Social.Host, socialCredentials, socialGateway, imageStorage),
		generationGateway,
	)
	healthUseCase := health.NewHealthUseCase(generationGateway, storyUseCase)

	warnMissingSecrets(storyConfig.MissingSecrets(), "story generation")
	if capabilities.Posting {
		warnMissingSecrets(socialCredentials.Missing(), "posting")
	}

	// Init infra
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal(err.Error())
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = controller.NewRequestValidator()
	e.Renderer = renderer
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	e.Use(echosession.Middleware(controller.NewSessionStore(sessionSecret(config.Session.Secret), config.Session.SecureCookie)))

	contextPath := strings.TrimRight(config.Server.ContextPath, "/")
	router := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller
	healthController := controller.NewHealthController(router, healthUseCase)
	storyController := controller.NewStoryController(router, contextPath, storyUseCase)
	pageController := controller.NewPageController(router, contextPath, storyUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	storyController.InitStoryRoutes()
	pageController.InitPageRoutes()

	// Init Schedule
	var sessionScheduler *schedule.SessionScheduler
	if redisClient == nil {
		sessionScheduler = schedule.NewSessionScheduler(config.Session.PurgeCron, storyUseCase)
		if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
			log.Fatal(err.Error())
		}
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + config.Server.Port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()
	log.Info(msg.GetMessage("app.started", config.Server.Port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
	if sessionScheduler != nil {
		sessionScheduler.Stop()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func clientOptions(name string, timeout time.Duration) http.ClientOptions {
	return http.ClientOptions{
		ReadTimeout:       timeout,
		ConnectionTimeout: 10 * time.Second,
		IdleConnTimeout:   90 * time.Second,
		Logger:            http.NewZapLogger(name),
	}
}

// newGenerationGateway returns the Redis store when enabled, otherwise the in-memory store
func newGenerationGateway(config configs.RedisConfig) (session.GenerationGateway, *redis.Client) {
	if !config.Enabled {
		return session.NewMemoryGenerationGateway(), nil
	}

	redisConfig := redis.NewRedisConfig().
		WithHost(config.Host).
		WithPort(config.Port).
		WithPassword(config.Password).
		WithDatabase(config.Database).
		WithKeyPrefix(config.KeyPrefix)

	client, err := redis.NewClient(redisConfig)
	if err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.Fatal(err.Error(), zap.String("redis", redisConfig.Addr()))
	}
	return session.NewRedisGenerationGateway(client), client
}

func warnMissingSecrets(missing []string, feature string) {
	for _, name := range missing {
		log.Warn(msg.GetMessage("app.config.missing-secret", name, feature))
	}
}

// sessionSecret falls back to a random key, which invalidates form sessions on restart
func sessionSecret(secret string) []byte {
	if secret != "" {
		return []byte(secret)
	}
	return securecookie.GenerateRandomKey(32)
}
