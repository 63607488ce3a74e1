package api

import (
	"context"
	"net/url"

	"weather-story/pkg/http"
)

type imageGatewayImpl struct {
	httpClient *http.Client
}

// NewImageGateway creates a gateway for a no-auth image host serving GET /prompt/<prompt>
func NewImageGateway(baseUrl string, clientOptions http.ClientOptions) ImageGateway {
	return &imageGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GenerateImage embeds the escaped prompt in the path and returns the response body
func (g *imageGatewayImpl) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	var body []byte

	_, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/prompt/" + url.PathEscape(prompt)).
		WithHeaders(map[string]string{"Accept": "image/*"}).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return nil, classify(err, "")
	}

	if len(body) == 0 {
		return nil, malformed("empty image body")
	}
	return body, nil
}
