package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by a pipeline stage unwraps to exactly one of them.
var (
	// ErrConfiguration reports missing or invalid secrets; no network call was attempted.
	ErrConfiguration = errors.New("configuration error")
	// ErrNetwork reports a connection failure or timeout.
	ErrNetwork = errors.New("network error")
	// ErrUpstream reports a non-2xx status or a malformed response from a provider.
	ErrUpstream = errors.New("upstream error")
	// ErrUnauthorized is the upstream rejecting the credentials (401/403).
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", ErrUpstream)
	// ErrValidation reports input or output that breaks a domain rule.
	ErrValidation = errors.New("validation error")
	// ErrNotFound reports a missing or expired generation.
	ErrNotFound = errors.New("not found")
)

// Stage names a step of the pipeline; its message is what the user sees.
type Stage string

const (
	StageConfiguration Stage = "configuration check failed"
	StageWeather       Stage = "weather fetch failed"
	StageNarrative     Stage = "story generation failed"
	StageImage         Stage = "image generation failed"
	StageSocialAuth    Stage = "social authentication failed"
	StageSocialUpload  Stage = "media upload failed"
	StageSocialPost    Stage = "post creation failed"
	StageSocialAccount Stage = "account lookup failed"
)

// StageError is a failure of one pipeline stage carrying its underlying cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return string(e.Stage)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err as a failure of stage.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// Kind returns the sentinel err unwraps to, or nil when it matches none.
func Kind(err error) error {
	for _, kind := range []error{ErrConfiguration, ErrValidation, ErrNotFound, ErrUnauthorized, ErrNetwork, ErrUpstream} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// ConfigurationError builds an ErrConfiguration carrying message verbatim.
func ConfigurationError(message string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, message)
}

// ValidationError builds an ErrValidation carrying message verbatim.
func ValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NotFoundError builds an ErrNotFound carrying message verbatim.
func NotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}
