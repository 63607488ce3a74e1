package social

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/api"
	"weather-story/internal/domain/gateway/storage"
	"weather-story/internal/domain/model"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

type socialUseCase struct {
	host           string
	credentials    api.SocialCredentials
	apiGateway     api.SocialGateway
	storageGateway storage.ImageGateway
}

// NewSocialUseCase creates the poster. host is the public platform host used in post URLs.
func NewSocialUseCase(host string, credentials api.SocialCredentials, apiGateway api.SocialGateway, storageGateway storage.ImageGateway) UseCase {
	return &socialUseCase{
		host:           host,
		credentials:    credentials,
		apiGateway:     apiGateway,
		storageGateway: storageGateway,
	}
}

func (uc *socialUseCase) Missing() []string {
	return uc.credentials.Missing()
}

// Publish runs upload, post and account lookup in order, stopping at the first failure. A 401 or
// 403 at any step is reported as an authentication failure.
func (uc *socialUseCase) Publish(ctx context.Context, text string, image *entity.ImageAsset) (*entity.PostResult, error) {
	if missing := uc.credentials.Missing(); len(missing) > 0 {
		return nil, model.NewStageError(model.StageConfiguration,
			model.ConfigurationError(msg.GetMessage("social.error.missing-credentials", strings.Join(missing, ", "))))
	}

	var mediaIDs []string
	if image != nil {
		mediaID, err := uc.upload(ctx, *image)
		if err != nil {
			return nil, err
		}
		mediaIDs = append(mediaIDs, mediaID)
	}

	narrative := entity.TruncateNarrative(text)
	if !narrative.Valid() {
		return nil, model.NewStageError(model.StageSocialPost,
			model.ValidationError(msg.GetMessage("story.narrative.too-long", narrative.Len(), entity.NarrativeLimit)))
	}

	postID, err := uc.apiGateway.CreatePost(ctx, narrative.String(), mediaIDs)
	if err != nil {
		return nil, stageError(model.StageSocialPost, err)
	}

	handle, err := uc.apiGateway.GetMe(ctx)
	if err != nil {
		return nil, stageError(model.StageSocialAccount, err)
	}

	return &entity.PostResult{
		ID:     postID,
		Handle: handle,
		URL:    entity.PostURL(uc.host, handle, postID),
	}, nil
}

func (uc *socialUseCase) upload(ctx context.Context, image entity.ImageAsset) (string, error) {
	data, err := uc.storageGateway.Load()
	if err != nil {
		return "", model.NewStageError(model.StageSocialUpload, err)
	}

	mediaID, err := uc.apiGateway.UploadMedia(ctx, filepath.Base(image.Path), data)
	if err != nil {
		return "", stageError(model.StageSocialUpload, err)
	}

	log.Debug(msg.GetMessage("social.upload.end", mediaID), zap.Int("size", len(data)))
	return mediaID, nil
}

func stageError(stage model.Stage, err error) error {
	if errors.Is(err, model.ErrUnauthorized) {
		return model.NewStageError(model.StageSocialAuth, err)
	}
	return model.NewStageError(stage, err)
}
