package image

import (
	"context"

	"go.uber.org/zap"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/api"
	"weather-story/internal/domain/gateway/storage"
	"weather-story/internal/domain/model"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

type imageUseCase struct {
	apiGateway     api.ImageGateway
	storageGateway storage.ImageGateway
}

func NewImageUseCase(apiGateway api.ImageGateway, storageGateway storage.ImageGateway) UseCase {
	return &imageUseCase{
		apiGateway:     apiGateway,
		storageGateway: storageGateway,
	}
}

// Generate fetches the image and overwrites the stored file. Every failure is an image stage error.
func (uc *imageUseCase) Generate(ctx context.Context, prompt string) (entity.ImageAsset, error) {
	data, err := uc.apiGateway.GenerateImage(ctx, prompt)
	if err != nil {
		return entity.ImageAsset{}, model.NewStageError(model.StageImage, err)
	}

	asset, err := uc.storageGateway.Save(data, prompt)
	if err != nil {
		return entity.ImageAsset{}, model.NewStageError(model.StageImage, err)
	}

	log.Info(msg.GetMessage("story.image.end", asset.Path, asset.Size, asset.ContentType),
		zap.Int("width", asset.Width),
		zap.Int("height", asset.Height))
	return asset, nil
}

func (uc *imageUseCase) Load() ([]byte, error) {
	return uc.storageGateway.Load()
}
