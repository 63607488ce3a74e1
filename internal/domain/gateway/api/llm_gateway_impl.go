package api

import (
	"context"

	"weather-story/internal/domain/model/external"
	"weather-story/pkg/http"
)

type llmGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewLLMGateway creates an OpenAI-compatible chat completion gateway with bearer authentication
func NewLLMGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) LLMGateway {
	return &llmGatewayImpl{
		apiKey:     apiKey,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Complete posts to /chat/completions and extracts choices[0].message.content
func (g *llmGatewayImpl) Complete(ctx context.Context, request external.ChatCompletionRequest) (string, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/chat/completions").
		WithHeaders(map[string]string{"Authorization": "Bearer " + g.apiKey}).
		WithBody(request).
		WithSuccessResp(&external.ChatCompletionResponse{}).
		WithErrorResp(&external.ChatErrorResponse{}).
		Execute()

	if err != nil {
		var message string
		if errResp != nil {
			message = errResp.(*external.ChatErrorResponse).Error.Message
		}
		return "", classify(err, message)
	}

	response := successResp.(*external.ChatCompletionResponse)
	if len(response.Choices) == 0 || response.Choices[0].Message == nil {
		return "", malformed("missing choices[0].message.content")
	}
	return response.Choices[0].Message.Content, nil
}
