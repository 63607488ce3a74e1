package api

import (
	"context"

	"weather-story/internal/domain/model/external"
)

// LLMGateway defines the interface for the chat completion provider
type LLMGateway interface {
	// Complete sends a single blocking chat completion request and returns the first choice's content
	Complete(ctx context.Context, request external.ChatCompletionRequest) (string, error)
}
