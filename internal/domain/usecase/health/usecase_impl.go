package health

import (
	"context"
	"strconv"
	"strings"

	"weather-story/internal/domain/gateway/session"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/usecase/story"
)

type healthUseCase struct {
	generationGateway session.GenerationGateway
	storyUseCase      story.UseCase
}

func NewHealthUseCase(generationGateway session.GenerationGateway, storyUseCase story.UseCase) UseCase {
	return &healthUseCase{
		generationGateway: generationGateway,
		storyUseCase:      storyUseCase,
	}
}

// CheckHealth is DOWN when the session store is unreachable or a required secret is missing
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	sessionHealth := useCase.generationGateway.Health(ctx)
	providersHealth := useCase.providersHealth()

	overallStatus := model.StatusUp
	if sessionHealth.Status != model.StatusUp || providersHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		SessionStore: sessionHealth,
		Providers:    providersHealth,
	}
}

func (useCase *healthUseCase) providersHealth() model.ComponentHealthStatus {
	missing := useCase.storyUseCase.MissingSecrets()
	missingSocial := useCase.storyUseCase.MissingSocialCredentials()
	posting := useCase.storyUseCase.Capabilities().Posting

	details := map[string]string{
		"posting_enabled":    strconv.FormatBool(posting),
		"social_credentials": strconv.FormatBool(len(missingSocial) == 0),
	}
	if len(missing) > 0 {
		details["missing_secrets"] = strings.Join(missing, ",")
	}
	if posting && len(missingSocial) > 0 {
		details["missing_social_credentials"] = strings.Join(missingSocial, ",")
	}

	status := model.StatusUp
	if len(missing) > 0 {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
