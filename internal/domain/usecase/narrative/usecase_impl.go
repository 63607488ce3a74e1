package narrative

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/api"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/model/external"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

type narrativeUseCase struct {
	modelName   string
	temperature float64
	maxTokens   int
	llmGateway  api.LLMGateway
}

func NewNarrativeUseCase(modelName string, temperature float64, maxTokens int, llmGateway api.LLMGateway) UseCase {
	return &narrativeUseCase{
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
		llmGateway:  llmGateway,
	}
}

// Generate trims the completion and truncates it to the post limit. Every failure is a narrative
// stage error.
func (uc *narrativeUseCase) Generate(ctx context.Context, record entity.WeatherRecord) (entity.NarrativeText, error) {
	content, err := uc.llmGateway.Complete(ctx, external.ChatCompletionRequest{
		Model:       uc.modelName,
		Messages:    []external.ChatMessage{{Role: "user", Content: BuildPrompt(record)}},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		return "", model.NewStageError(model.StageNarrative, err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", model.NewStageError(model.StageNarrative,
			fmt.Errorf("%w: %s", model.ErrUpstream, msg.GetMessage("story.narrative.empty")))
	}

	text := entity.TruncateNarrative(content)
	if !text.Valid() {
		return "", model.NewStageError(model.StageNarrative,
			model.ValidationError(msg.GetMessage("story.narrative.too-long", text.Len(), entity.NarrativeLimit)))
	}

	log.Info(msg.GetMessage("story.narrative.end", text.Len(), text.String() != content),
		zap.String("city", record.City),
		zap.Int("length", text.Len()))
	return text, nil
}
