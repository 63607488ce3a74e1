package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"weather-story/internal/domain/model"
	"weather-story/internal/domain/model/external"
	httpclient "weather-story/pkg/http"
)

const chennaiPayload = `{
  "location": {"name": "Chennai", "region": "Tamil Nadu", "country": "India", "localtime": "2025-10-12 14:05"},
  "current": {
    "temp_c": 31.2, "feelslike_c": 36.4, "condition": {"text": "Partly cloudy"},
    "wind_kph": 14.4, "humidity": 66, "uv": 7.0,
    "air_quality": {"us-epa-index": 2, "pm2_5": 21.5, "pm10": 40.1}
  }
}`

func TestWeatherGatewaySendsQueryAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/current.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("key") != "weather-key" || query.Get("q") != "Chennai,India" || query.Get("aqi") != "yes" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chennaiPayload))
	}))
	defer server.Close()

	gateway := NewWeatherGateway(server.URL+"/v1", "weather-key", httpclient.ClientOptions{})
	resp, err := gateway.GetCurrentWeather(context.Background(), "Chennai,India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Location.Name != "Chennai" || resp.Current.TempC != 31.2 {
		t.Fatalf("unexpected decoded payload %+v", resp)
	}
	if resp.Current.AirQuality == nil || resp.Current.AirQuality.USEPAIndex == nil || *resp.Current.AirQuality.USEPAIndex != 2 {
		t.Fatalf("expected us-epa-index 2, got %+v", resp.Current.AirQuality)
	}
}

func TestWeatherGatewayErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{name: "provider error", status: http.StatusBadRequest, body: `{"error":{"code":1006,"message":"No matching location found."}}`, want: model.ErrUpstream, message: "No matching location found."},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"code":2006,"message":"API key is invalid."}}`, want: model.ErrUnauthorized},
		{name: "malformed json", status: http.StatusOK, body: `{"location":`, want: model.ErrUpstream},
		{name: "missing blocks", status: http.StatusOK, body: `{"location":{"name":"Chennai"}}`, want: model.ErrUpstream, message: "malformed response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewWeatherGateway(server.URL, "k", httpclient.ClientOptions{}).GetCurrentWeather(context.Background(), "x")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected message %q in %q", tt.message, err.Error())
			}
		})
	}
}

func TestWeatherGatewayNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewWeatherGateway(url, "k", httpclient.ClientOptions{}).GetCurrentWeather(context.Background(), "x")
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestLLMGatewayComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer llm-key" {
			t.Errorf("missing bearer token")
		}
		var req external.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "llama-3.3-70b-versatile" || req.Temperature != 0.8 || req.MaxTokens != 200 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected request body %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"Sunny story"}}]}`))
	}))
	defer server.Close()

	gateway := NewLLMGateway(server.URL+"/openai/v1", "llm-key", httpclient.ClientOptions{})
	content, err := gateway.Complete(context.Background(), external.ChatCompletionRequest{
		Model:       "llama-3.3-70b-versatile",
		Messages:    []external.ChatMessage{{Role: "user", Content: "prompt"}},
		Temperature: 0.8,
		MaxTokens:   200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Sunny story" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestLLMGatewayMissingCompletion(t *testing.T) {
	for _, body := range []string{`{"choices":[]}`, `{"choices":[{"index":0}]}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		_, err := NewLLMGateway(server.URL, "k", httpclient.ClientOptions{}).Complete(context.Background(), external.ChatCompletionRequest{})
		server.Close()
		if !errors.Is(err, model.ErrUpstream) {
			t.Fatalf("body %s: expected upstream error, got %v", body, err)
		}
	}
}

func TestImageGatewayEscapesPromptAndReturnsBytes(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/prompt/Partly%20cloudy%20weather%20in%20Chennai%2C%20India%2C%20realistic%20photo" {
			t.Errorf("unexpected escaped path %s", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	body, err := NewImageGateway(server.URL, httpclient.ClientOptions{}).
		GenerateImage(context.Background(), "Partly cloudy weather in Chennai, India, realistic photo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != string(payload) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestImageGatewayFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "empty") {
			w.Header().Set("Content-Type", "image/jpeg")
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := NewImageGateway(server.URL, httpclient.ClientOptions{})
	if _, err := gateway.GenerateImage(context.Background(), "empty"); !errors.Is(err, model.ErrUpstream) {
		t.Fatalf("expected upstream error for empty body, got %v", err)
	}
	if _, err := gateway.GenerateImage(context.Background(), "boom"); !errors.Is(err, model.ErrUpstream) {
		t.Fatalf("expected upstream error for 500, got %v", err)
	}
}

func TestSocialGatewaySignsAndCallsEndpoints(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "OAuth ") || !strings.Contains(auth, `oauth_consumer_key="ck"`) || !strings.Contains(auth, `oauth_token="at"`) {
			t.Errorf("request %s is not OAuth1 signed: %q", r.URL.Path, auth)
		}
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/1.1/media/upload.json":
			file, header, err := r.FormFile("media")
			if err != nil {
				t.Errorf("expected media part: %v", err)
				return
			}
			content, _ := io.ReadAll(file)
			if header.Filename != "weather_image.png" || string(content) != "image" {
				t.Errorf("unexpected upload %s %q", header.Filename, content)
			}
			_, _ = w.Write([]byte(`{"media_id":1710,"media_id_string":"1710"}`))
		case "/2/tweets":
			var req external.CreatePostRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Text != "hello" || req.Media == nil || req.Media.MediaIDs[0] != "1710" {
				t.Errorf("unexpected post body %+v", req)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"id":"99","text":"hello"}}`))
		case "/2/users/me":
			_, _ = w.Write([]byte(`{"data":{"id":"1","name":"Weather","username":"weatherbot"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	credentials := SocialCredentials{APIKey: "ck", APISecret: "cs", AccessToken: "at", AccessTokenSecret: "ats"}
	gateway := NewSocialGateway(server.URL, server.URL, credentials, httpclient.ClientOptions{})
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("building the gateway must not call the network")
	}

	ctx := context.Background()
	mediaID, err := gateway.UploadMedia(ctx, "weather_image.png", []byte("image"))
	if err != nil || mediaID != "1710" {
		t.Fatalf("upload failed: %q %v", mediaID, err)
	}
	postID, err := gateway.CreatePost(ctx, "hello", []string{mediaID})
	if err != nil || postID != "99" {
		t.Fatalf("post failed: %q %v", postID, err)
	}
	handle, err := gateway.GetMe(ctx)
	if err != nil || handle != "weatherbot" {
		t.Fatalf("me failed: %q %v", handle, err)
	}
}

func TestSocialGatewayUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"title":"Unauthorized","detail":"Unauthorized","type":"about:blank","status":401}`))
	}))
	defer server.Close()

	gateway := NewSocialGateway(server.URL, server.URL, SocialCredentials{APIKey: "a", APISecret: "b", AccessToken: "c", AccessTokenSecret: "d"}, httpclient.ClientOptions{})
	_, err := gateway.CreatePost(context.Background(), "hello", nil)
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestSocialCredentialsMissing(t *testing.T) {
	credentials := SocialCredentials{APIKey: "a", AccessToken: "c"}
	missing := credentials.Missing()
	if len(missing) != 2 || missing[0] != "SOCIAL_API_SECRET" || missing[1] != "SOCIAL_ACCESS_TOKEN_SECRET" {
		t.Fatalf("unexpected missing list %v", missing)
	}
	if credentials.Complete() {
		t.Fatal("credentials must not be complete")
	}
}
