package image

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/storage"
	"weather-story/internal/domain/model"
)

type fakeImageGateway struct {
	data   []byte
	err    error
	prompt string
}

func (f *fakeImageGateway) GenerateImage(_ context.Context, prompt string) ([]byte, error) {
	f.prompt = prompt
	return f.data, f.err
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt(entity.WeatherRecord{Condition: "Partly cloudy"}, "Chennai", "India")
	if got != "Partly cloudy weather in Chennai, India, realistic photo" {
		t.Fatalf("unexpected prompt %q", got)
	}
}

func TestGenerateOverwritesStoredImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "weather_image.png", bytes.Repeat([]byte{9}, 32), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	payload := []byte{1, 2, 3, 4, 5}
	gateway := &fakeImageGateway{data: payload}
	useCase := NewImageUseCase(gateway, storage.NewImageGateway(fs, "weather_image.png"))

	asset, err := useCase.Generate(context.Background(), "Sunny weather in Delhi, India, realistic photo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.prompt != "Sunny weather in Delhi, India, realistic photo" || asset.Prompt != gateway.prompt {
		t.Fatalf("prompt was not forwarded: %q / %q", gateway.prompt, asset.Prompt)
	}

	stored, _ := useCase.Load()
	if !bytes.Equal(stored, payload) || asset.Size != 5 {
		t.Fatalf("expected exactly %v, got %v", payload, stored)
	}
}

func TestGenerateFailureIsImageStage(t *testing.T) {
	useCase := NewImageUseCase(&fakeImageGateway{err: model.ErrNetwork}, storage.NewImageGateway(afero.NewMemMapFs(), "img.png"))

	_, err := useCase.Generate(context.Background(), "prompt")
	var stageErr *model.StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != model.StageImage || !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("expected image stage network error, got %v", err)
	}
}
