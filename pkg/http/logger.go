package http

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// secretParams are query parameters whose values never reach the logs.
var secretParams = []string{"key", "api_key", "apikey", "token", "access_token"}

// ZapLogger writes HTTP events through pkg/log. Bodies are logged at debug level only.
type ZapLogger struct {
	Name string
}

// NewZapLogger creates an HTTPLogger tagging every entry with the client name.
func NewZapLogger(name string) *ZapLogger {
	return &ZapLogger{Name: name}
}

func (l *ZapLogger) LogRequest(method, rawURL string, headers map[string]string, body string) {
	redacted := RedactURL(rawURL)
	log.Debug(msg.GetMessage("http.request", method, redacted),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", redacted),
		zap.Any("headers", RedactHeaders(headers)),
		zap.String("body", body))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	redacted := RedactURL(rawURL)
	log.Info(msg.GetMessage("http.response-success", method, redacted, httpStatus, latency),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", redacted),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("response body", zap.String("client", l.Name), zap.String("body", responseBody))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	redacted := RedactURL(rawURL)
	log.Warn(msg.GetMessage("http.response-error", method, redacted, httpStatus, latency, err),
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", redacted),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}

// RedactURL masks secret query parameter values.
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	query := parsed.Query()
	for _, name := range secretParams {
		if query.Has(name) {
			query.Set(name, "redacted")
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// RedactHeaders returns a copy of headers with credentials masked.
func RedactHeaders(headers map[string]string) map[string]string {
	redacted := make(map[string]string, len(headers))
	for k, v := range headers {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			redacted[k] = "****"
			continue
		}
		redacted[k] = v
	}
	return redacted
}
