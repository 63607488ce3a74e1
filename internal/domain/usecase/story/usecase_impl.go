package story

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/session"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/usecase/image"
	"weather-story/internal/domain/usecase/narrative"
	"weather-story/internal/domain/usecase/social"
	"weather-story/internal/domain/usecase/weather"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

// Config holds the fixed settings of the orchestrator
type Config struct {
	Country       string
	Cities        []string
	TTL           time.Duration
	WeatherAPIKey string
	LLMAPIKey     string
}

// MissingSecrets returns the env names of the required secrets that are not set
func (c Config) MissingSecrets() []string {
	var missing []string
	if c.WeatherAPIKey == "" {
		missing = append(missing, "WEATHER_API_KEY")
	}
	if c.LLMAPIKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	return missing
}

type storyUseCase struct {
	config            Config
	capabilities      Capabilities
	weatherUseCase    weather.UseCase
	narrativeUseCase  narrative.UseCase
	imageUseCase      image.UseCase
	socialUseCase     social.UseCase
	generationGateway session.GenerationGateway

	// mutex serializes actions; the image file has a single writer
	mutex sync.Mutex
	// imageOwner is the generation whose image is currently on disk
	imageOwner string

	now   func() time.Time
	newID func() string
}

func NewStoryUseCase(
	config Config,
	capabilities Capabilities,
	weatherUseCase weather.UseCase,
	narrativeUseCase narrative.UseCase,
	imageUseCase image.UseCase,
	socialUseCase social.UseCase,
	generationGateway session.GenerationGateway,
) UseCase {
	if config.TTL <= 0 {
		config.TTL = 30 * time.Minute
	}

	return &storyUseCase{
		config:            config,
		capabilities:      capabilities,
		weatherUseCase:    weatherUseCase,
		narrativeUseCase:  narrativeUseCase,
		imageUseCase:      imageUseCase,
		socialUseCase:     socialUseCase,
		generationGateway: generationGateway,
		now:               time.Now,
		newID:             uuid.NewString,
	}
}

func (uc *storyUseCase) Country() string {
	return uc.config.Country
}

func (uc *storyUseCase) Cities() []string {
	return slices.Clone(uc.config.Cities)
}

func (uc *storyUseCase) Capabilities() Capabilities {
	return uc.capabilities
}

func (uc *storyUseCase) MissingSecrets() []string {
	return uc.config.MissingSecrets()
}

func (uc *storyUseCase) MissingSocialCredentials() []string {
	return uc.socialUseCase.Missing()
}

// Generate runs weather -> narrative -> image. Weather and narrative failures stop the pipeline;
// an image failure is recorded on the generation and the result is still returned.
func (uc *storyUseCase) Generate(ctx context.Context, city string) (*entity.Generation, error) {
	if missing := uc.config.MissingSecrets(); len(missing) > 0 {
		return nil, model.NewStageError(model.StageConfiguration,
			model.ConfigurationError(fmt.Sprintf("%s (%s)", msg.GetMessage("story.error.missing-required-secrets"), strings.Join(missing, ", "))))
	}
	if !slices.Contains(uc.config.Cities, city) {
		return nil, model.ValidationError(msg.GetMessage("story.error.unknown-city", city))
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	now := uc.now()
	gen := entity.Generation{
		ID:        uc.newID(),
		City:      city,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.config.TTL),
	}
	log.Info(msg.GetMessage("story.generate.start", gen.ID, city), zap.String("generation_id", gen.ID))

	record, err := uc.weatherUseCase.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	gen.Weather = record

	text, err := uc.narrativeUseCase.Generate(ctx, record)
	if err != nil {
		return nil, err
	}
	gen.Narrative = text

	gen.ImagePrompt = image.BuildPrompt(record, city, uc.config.Country)
	asset, err := uc.imageUseCase.Generate(ctx, gen.ImagePrompt)
	if err != nil {
		log.Warn(msg.GetMessage("story.generate.image-skipped", gen.ID, err), zap.String("generation_id", gen.ID))
		gen.ImageError = err.Error()
	} else {
		gen.Image = &asset
		uc.imageOwner = gen.ID
	}

	if err := uc.generationGateway.Save(ctx, gen); err != nil {
		return nil, fmt.Errorf("failed to store generation %s: %w", gen.ID, err)
	}

	log.Info(msg.GetMessage("story.generate.end", gen.ID, city),
		zap.String("generation_id", gen.ID),
		zap.Int("narrative_length", gen.Narrative.Len()),
		zap.Bool("image", gen.Image != nil))
	return &gen, nil
}

func (uc *storyUseCase) FindGeneration(ctx context.Context, id string) (*entity.Generation, error) {
	gen, err := uc.generationGateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find generation %s: %w", id, err)
	}
	if gen == nil {
		return nil, model.NotFoundError(msg.GetMessage("story.error.not-found", id))
	}
	return gen, nil
}

// Post requires the posting capability and an explicit opt-in before anything else is looked at.
// A failed post leaves the generation untouched so the user can retry.
func (uc *storyUseCase) Post(ctx context.Context, id string, optIn bool) (*entity.PostResult, error) {
	if !uc.capabilities.Posting {
		return nil, model.NewStageError(model.StageConfiguration,
			model.ConfigurationError(msg.GetMessage("story.error.posting-unavailable")))
	}
	if !optIn {
		return nil, model.ValidationError(msg.GetMessage("story.error.opt-in-required"))
	}

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	gen, err := uc.FindGeneration(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info(msg.GetMessage("story.post.start", id), zap.String("generation_id", id))

	asset := gen.Image
	if asset != nil && uc.imageOwner != gen.ID {
		log.Warn(msg.GetMessage("story.post.image-replaced", id), zap.String("generation_id", id))
		asset = nil
	}

	result, err := uc.socialUseCase.Publish(ctx, gen.Narrative.String(), asset)
	if err != nil {
		return nil, err
	}

	gen.Post = result
	if err := uc.generationGateway.Save(ctx, *gen); err != nil {
		return nil, fmt.Errorf("failed to store generation %s: %w", gen.ID, err)
	}

	log.Info(msg.GetMessage("story.post.end", id, result.URL), zap.String("generation_id", id))
	return result, nil
}

// ImageData serves the image only while it still belongs to the generation.
func (uc *storyUseCase) ImageData(ctx context.Context, id string) ([]byte, string, error) {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	gen, err := uc.FindGeneration(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if gen.Image == nil || uc.imageOwner != gen.ID {
		return nil, "", model.NotFoundError(msg.GetMessage("story.error.no-image", id))
	}

	data, err := uc.imageUseCase.Load()
	if err != nil {
		return nil, "", err
	}
	return data, gen.Image.ContentType, nil
}

func (uc *storyUseCase) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := uc.generationGateway.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge generations: %w", err)
	}
	return purged, nil
}
