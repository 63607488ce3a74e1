package api

import (
	"errors"
	"fmt"
	"net/http"

	"weather-story/internal/domain/model"
	httpclient "weather-story/pkg/http"
)

// classify maps a pkg/http failure to a domain error kind, keeping the cause and the provider's
// own message when one was decoded.
func classify(err error, upstreamMessage string) error {
	var statusErr *httpclient.StatusError
	switch {
	case errors.As(err, &statusErr):
		kind := model.ErrUpstream
		if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
			kind = model.ErrUnauthorized
		}
		if upstreamMessage != "" {
			return fmt.Errorf("%w: %w: %s", kind, err, upstreamMessage)
		}
		return fmt.Errorf("%w: %w", kind, err)
	case errors.Is(err, httpclient.ErrDecode):
		return fmt.Errorf("%w: %w", model.ErrUpstream, err)
	default:
		return fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
}

// malformed reports a structurally invalid provider payload.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: malformed response: %s", model.ErrUpstream, fmt.Sprintf(format, args...))
}
