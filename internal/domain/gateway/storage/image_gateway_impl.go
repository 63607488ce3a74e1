package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp"

	"weather-story/internal/domain/entity"
)

type imageGatewayImpl struct {
	fs   afero.Fs
	path string
}

// NewImageGateway creates an ImageGateway writing to path on fs
func NewImageGateway(fs afero.Fs, path string) ImageGateway {
	return &imageGatewayImpl{fs: fs, path: filepath.Clean(path)}
}

func (g *imageGatewayImpl) Path() string {
	return g.path
}

// Save replaces the whole file. The bytes go to a temp file in the same directory that is renamed
// over the target, so a failed write leaves the previous image intact. Dimensions are left at zero
// when the format cannot be decoded.
func (g *imageGatewayImpl) Save(data []byte, prompt string) (entity.ImageAsset, error) {
	dir := filepath.Dir(g.path)
	if dir != "." {
		if err := g.fs.MkdirAll(dir, 0o755); err != nil {
			return entity.ImageAsset{}, fmt.Errorf("failed to create image directory %s: %w", dir, err)
		}
	}

	if err := g.replace(dir, data); err != nil {
		return entity.ImageAsset{}, fmt.Errorf("failed to write image %s: %w", g.path, err)
	}

	asset := entity.ImageAsset{
		Path:        g.path,
		ContentType: mimetype.Detect(data).String(),
		Size:        len(data),
		Prompt:      prompt,
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		asset.Width = cfg.Width
		asset.Height = cfg.Height
	}
	return asset, nil
}

func (g *imageGatewayImpl) replace(dir string, data []byte) error {
	tmp, err := afero.TempFile(g.fs, dir, "."+filepath.Base(g.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = g.fs.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = g.fs.Rename(tmpName, g.path)
	}
	if err != nil {
		_ = g.fs.Remove(tmpName)
	}
	return err
}

func (g *imageGatewayImpl) Load() ([]byte, error) {
	data, err := afero.ReadFile(g.fs, g.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", g.path, err)
	}
	return data, nil
}
