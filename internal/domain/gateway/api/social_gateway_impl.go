package api

import (
	"context"
	nethttp "net/http"

	"github.com/dghubble/oauth1"

	"weather-story/internal/domain/model/external"
	"weather-story/pkg/http"
)

type socialGatewayImpl struct {
	apiClient    *http.Client
	uploadClient *http.Client
}

// NewSocialGateway creates a gateway whose requests are OAuth1 signed with credentials. Building it
// performs no network call.
func NewSocialGateway(apiUrl string, uploadUrl string, credentials SocialCredentials, clientOptions http.ClientOptions) SocialGateway {
	clientOptions.WrapTransport = oauth1Transport(credentials)

	return &socialGatewayImpl{
		apiClient:    http.NewHttpClient(apiUrl, clientOptions),
		uploadClient: http.NewHttpClient(uploadUrl, clientOptions),
	}
}

// oauth1Transport signs requests on top of the pooled base transport
func oauth1Transport(credentials SocialCredentials) func(nethttp.RoundTripper) nethttp.RoundTripper {
	return func(base nethttp.RoundTripper) nethttp.RoundTripper {
		config := oauth1.NewConfig(credentials.APIKey, credentials.APISecret)
		token := oauth1.NewToken(credentials.AccessToken, credentials.AccessTokenSecret)
		ctx := context.WithValue(context.Background(), oauth1.HTTPClient, &nethttp.Client{Transport: base})
		return config.Client(ctx, token).Transport
	}
}

// UploadMedia posts the asset as multipart form data to the v1.1 upload endpoint
func (g *socialGatewayImpl) UploadMedia(ctx context.Context, fileName string, content []byte) (string, error) {
	successResp, errResp, _, err := g.uploadClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/1.1/media/upload.json").
		WithBody(http.FormFile{FieldName: "media", FileName: fileName, Content: content}).
		WithSuccessResp(&external.MediaUploadResponse{}).
		WithErrorResp(&external.SocialErrorResponse{}).
		Execute()
	if err != nil {
		return "", classify(err, socialMessage(errResp))
	}

	response := successResp.(*external.MediaUploadResponse)
	if response.MediaIDString == "" {
		return "", malformed("missing media_id_string")
	}
	return response.MediaIDString, nil
}

// CreatePost publishes through the v2 posts endpoint
func (g *socialGatewayImpl) CreatePost(ctx context.Context, text string, mediaIDs []string) (string, error) {
	request := external.CreatePostRequest{Text: text}
	if len(mediaIDs) > 0 {
		request.Media = &external.PostMedia{MediaIDs: mediaIDs}
	}

	successResp, errResp, _, err := g.apiClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath("/2/tweets").
		WithBody(request).
		WithSuccessResp(&external.CreatePostResponse{}).
		WithErrorResp(&external.SocialErrorResponse{}).
		Execute()
	if err != nil {
		return "", classify(err, socialMessage(errResp))
	}

	response := successResp.(*external.CreatePostResponse)
	if response.Data.ID == "" {
		return "", malformed("missing data.id")
	}
	return response.Data.ID, nil
}

// GetMe looks up the authenticated account through the v2 users/me endpoint
func (g *socialGatewayImpl) GetMe(ctx context.Context) (string, error) {
	successResp, errResp, _, err := g.apiClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/2/users/me").
		WithSuccessResp(&external.UserMeResponse{}).
		WithErrorResp(&external.SocialErrorResponse{}).
		Execute()
	if err != nil {
		return "", classify(err, socialMessage(errResp))
	}

	response := successResp.(*external.UserMeResponse)
	if response.Data.Username == "" {
		return "", malformed("missing data.username")
	}
	return response.Data.Username, nil
}

func socialMessage(errResp any) string {
	if errResp == nil {
		return ""
	}
	return errResp.(*external.SocialErrorResponse).Message()
}
