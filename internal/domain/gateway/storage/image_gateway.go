package storage

import "weather-story/internal/domain/entity"

// ImageGateway persists the image of the current generation cycle to a single fixed file
type ImageGateway interface {
	// Save overwrites the file with data and describes what was written
	Save(data []byte, prompt string) (entity.ImageAsset, error)

	// Load reads the file back
	Load() ([]byte, error)

	// Path returns the fixed file location
	Path() string
}
