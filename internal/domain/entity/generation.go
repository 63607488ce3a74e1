package entity

import "time"

// Generation holds the results of one "generate" action until the user posts it or it expires.
type Generation struct {
	ID          string        `json:"id"`
	City        string        `json:"city"`
	Weather     WeatherRecord `json:"weather"`
	Narrative   NarrativeText `json:"narrative"`
	ImagePrompt string        `json:"imagePrompt"`
	Image       *ImageAsset   `json:"image,omitempty"`
	ImageError  string        `json:"imageError,omitempty"`
	Post        *PostResult   `json:"post,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

// Expired reports whether the generation is past its expiry at now.
func (g Generation) Expired(now time.Time) bool {
	return !g.ExpiresAt.IsZero() && !now.Before(g.ExpiresAt)
}
