package health

import (
	"context"
	"testing"

	"weather-story/internal/domain/gateway/session"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/usecase/story"
)

type fakeStory struct {
	story.UseCase
	missing       []string
	missingSocial []string
	posting       bool
}

func (f fakeStory) MissingSecrets() []string           { return f.missing }
func (f fakeStory) MissingSocialCredentials() []string { return f.missingSocial }
func (f fakeStory) Capabilities() story.Capabilities   { return story.Capabilities{Posting: f.posting} }

type downGateway struct {
	session.GenerationGateway
}

func (downGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		gateway    session.GenerationGateway
		story      fakeStory
		want       model.HealthStatus
		wantDetail string
	}{
		{name: "all configured", gateway: session.NewMemoryGenerationGateway(), story: fakeStory{posting: true}, want: model.StatusUp},
		{name: "missing secret", gateway: session.NewMemoryGenerationGateway(), story: fakeStory{missing: []string{"LLM_API_KEY"}}, want: model.StatusDown, wantDetail: "missing_secrets"},
		{name: "posting without credentials", gateway: session.NewMemoryGenerationGateway(), story: fakeStory{posting: true, missingSocial: []string{"SOCIAL_API_KEY"}}, want: model.StatusUp, wantDetail: "missing_social_credentials"},
		{name: "session store down", gateway: downGateway{}, story: fakeStory{}, want: model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewHealthUseCase(tt.gateway, tt.story).CheckHealth(context.Background())
			if resp.Status != tt.want {
				t.Fatalf("expected %s, got %+v", tt.want, resp)
			}
			if tt.wantDetail != "" {
				if _, ok := resp.Providers.Details[tt.wantDetail]; !ok {
					t.Fatalf("expected detail %q in %v", tt.wantDetail, resp.Providers.Details)
				}
			}
		})
	}
}
