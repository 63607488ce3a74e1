package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStageErrorUnwrapsToKind(t *testing.T) {
	cause := fmt.Errorf("%w: connection refused", ErrNetwork)
	err := NewStageError(StageWeather, cause)

	if err.Error() != "weather fetch failed: network error: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNetwork) {
		t.Fatal("expected stage error to unwrap to ErrNetwork")
	}

	var stageErr *StageError
	if !errors.As(fmt.Errorf("outer: %w", err), &stageErr) || stageErr.Stage != StageWeather {
		t.Fatalf("expected to recover the weather stage, got %v", stageErr)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "configuration", err: ConfigurationError("missing key"), want: ErrConfiguration},
		{name: "validation", err: ValidationError("too long"), want: ErrValidation},
		{name: "not found", err: NotFoundError("story x"), want: ErrNotFound},
		{name: "unauthorized", err: NewStageError(StageSocialAuth, fmt.Errorf("%w: 401", ErrUnauthorized)), want: ErrUnauthorized},
		{name: "upstream", err: fmt.Errorf("%w: 500", ErrUpstream), want: ErrUpstream},
		{name: "unknown", err: errors.New("boom"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}

	if !errors.Is(ErrUnauthorized, ErrUpstream) {
		t.Fatal("ErrUnauthorized must be an upstream error")
	}
}

func TestKindErrorsKeepMessageVerbatim(t *testing.T) {
	err := ValidationError("City 100%d off is not supported.")
	if got := err.Error(); got != "validation error: City 100%d off is not supported." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := NotFoundError("Story id-%s was not found.").Error(); !strings.Contains(got, "id-%s") {
		t.Fatalf("unexpected message %q", got)
	}
}
