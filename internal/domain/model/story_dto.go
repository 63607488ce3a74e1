package model

import (
	"time"

	"weather-story/internal/domain/entity"
)

// GenerateStoryDTO is the body of a "generate" action.
type GenerateStoryDTO struct {
	City string `json:"city" form:"city" validate:"required"`
}

// PostStoryDTO is the body of a "post" action. Posting is refused unless OptIn is true.
type PostStoryDTO struct {
	OptIn bool `json:"optIn" form:"optIn"`
}

// StoryResponse is the JSON view of a generation.
type StoryResponse struct {
	ID          string               `json:"id"`
	City        string               `json:"city"`
	Weather     entity.WeatherRecord `json:"weather"`
	Narrative   string               `json:"narrative"`
	Length      int                  `json:"length"`
	ImagePrompt string               `json:"imagePrompt"`
	ImageURL    string               `json:"imageUrl,omitempty"`
	ImageError  string               `json:"imageError,omitempty"`
	Post        *entity.PostResult   `json:"post,omitempty"`
	ExpiresAt   time.Time            `json:"expiresAt"`
}

// NewStoryResponse maps a generation; imageURL is empty when there is no image.
func NewStoryResponse(gen *entity.Generation, imageURL string) StoryResponse {
	resp := StoryResponse{
		ID:          gen.ID,
		City:        gen.City,
		Weather:     gen.Weather,
		Narrative:   gen.Narrative.String(),
		Length:      gen.Narrative.Len(),
		ImagePrompt: gen.ImagePrompt,
		ImageError:  gen.ImageError,
		Post:        gen.Post,
		ExpiresAt:   gen.ExpiresAt,
	}
	if gen.Image != nil {
		resp.ImageURL = imageURL
	}
	return resp
}

// CitiesResponse lists the selectable cities.
type CitiesResponse struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}
