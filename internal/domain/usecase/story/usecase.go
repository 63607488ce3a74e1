package story

import (
	"context"

	"weather-story/internal/domain/entity"
)

// Capabilities are resolved once at startup.
type Capabilities struct {
	// Posting enables the social publishing step
	Posting bool
}

type UseCase interface {
	// Country returns the country every city belongs to
	Country() string

	// Cities returns the selectable cities in display order
	Cities() []string

	// Capabilities returns the startup capability flags
	Capabilities() Capabilities

	// MissingSecrets lists the unset required secrets; Generate fails while it is non-empty
	MissingSecrets() []string

	// MissingSocialCredentials lists the unset social credentials
	MissingSocialCredentials() []string

	// Generate fetches weather, writes the narrative and fetches the image for city
	Generate(ctx context.Context, city string) (*entity.Generation, error)

	// FindGeneration returns a stored generation
	FindGeneration(ctx context.Context, id string) (*entity.Generation, error)

	// Post publishes a stored generation. optIn must be true.
	Post(ctx context.Context, id string, optIn bool) (*entity.PostResult, error)

	// ImageData returns the image bytes and content type of a generation
	ImageData(ctx context.Context, id string) ([]byte, string, error)

	// PurgeExpired drops expired generations from the session store
	PurgeExpired(ctx context.Context) (int, error)
}
