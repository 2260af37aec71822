package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"launcher-icon-generator/config"
	"launcher-icon-generator/models"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

var (
	ErrSourceNotFound   = errors.New("source image not found")
	ErrSourceUnreadable = errors.New("source image cannot be decoded")
	ErrInterrupted      = errors.New("operation cancelled")
	ErrInvalidSize      = errors.New("edge length must be positive")
)

type ResizingService struct {
	Cache  *lru.Cache
	Config config.Config
	Logger *zap.Logger
}

func NewResizingService(c config.Config, logger *zap.Logger) (*ResizingService, error) {
	cache, err := lru.New(c.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &ResizingService{
		Cache:  cache,
		Config: c,
		Logger: logger,
	}, nil
}

// RunAll generates every icon of the size table followed by the store icon.
// A missing or undecodable source aborts before anything is written; a
// failing icon is counted and the run continues. Cancelling ctx stops the
// run between icons; a run cancelled at any point returns ErrInterrupted.
func (s *ResizingService) RunAll(ctx context.Context) (models.RunSummary, error) {
	summary := models.RunSummary{}

	info, err := s.Inspect(s.Config.Source)
	if err != nil {
		return summary, err
	}
	summary.Source = info
	s.Logger.Info("source image",
		zap.String("path", info.Path),
		zap.String("format", info.Format),
		zap.String("dimensions", fmt.Sprintf("%dx%d", info.Width, info.Height)),
		zap.String("mode", info.Mode),
	)

	for _, target := range Targets(s.Config) {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		result, _ := s.ResizeAndSave(s.Config.Source, target.Path, target.Size)
		summary.Add(result)
	}

	if summary.Complete() {
		s.Logger.Info("launcher icons generated",
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("attempted", summary.Attempted),
		)
		s.Logger.Info("next: check the generated icons, then rebuild the app (gradlew bundleRelease)")
	} else {
		s.Logger.Warn("some launcher icons failed",
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("attempted", summary.Attempted),
		)
	}

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	store := StoreTarget(s.Config)
	result, err := s.ResizeAndSave(s.Config.Source, store.Path, store.Size)
	summary.Store = &result
	if err == nil {
		s.Logger.Info("store icon generated", zap.String("path", store.Path))
	}
	// an interrupt during the store icon still fails the run
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	if len(s.Config.Report) > 0 {
		if err := WriteReport(s.Config.Report, summary); err != nil {
			s.Logger.Error("failed to write run report", zap.String("path", s.Config.Report), zap.Error(err))
		}
	}
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return summary, nil
}

// Inspect decodes the source and reports its native dimensions, format and
// color mode. The decoded image is kept in the cache for the icons that follow.
func (s *ResizingService) Inspect(source string) (models.SourceInfo, error) {
	entry, _, err := s.load(source)
	if err != nil {
		return models.SourceInfo{}, err
	}
	return entry.info, nil
}

// ResizeAndSave writes source as a size x size RGBA PNG to dest, creating
// missing parent directories. The returned result describes the outcome
// either way.
func (s *ResizingService) ResizeAndSave(source, dest string, size int) (models.ResizeResult, error) {
	result := models.ResizeResult{Path: dest, Size: size}

	cached, err := s.resizeAndSave(source, dest, size)
	result.Cached = cached
	if err != nil {
		result.Result = models.Failure
		result.Error = err.Error()
		s.Logger.Error("failed to generate icon",
			zap.String("path", dest),
			zap.Int("size", size),
			zap.Error(err),
		)
		return result, err
	}

	result.Result = models.Success
	s.Logger.Info("generated icon",
		zap.String("path", dest),
		zap.String("dimensions", fmt.Sprintf("%dx%d", size, size)),
		zap.Bool("cached", cached),
	)
	return result, nil
}

func (s *ResizingService) resizeAndSave(source, dest string, size int) (bool, error) {
	if size <= 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	entry, cached, err := s.load(source)
	if err != nil {
		return false, err
	}

	data, err := encodePNG(s.resize(entry.img, size))
	if err != nil {
		return cached, fmt.Errorf("failed to png encode resized image: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return cached, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return cached, fmt.Errorf("failed to write icon: %w", err)
	}
	return cached, nil
}

func (s *ResizingService) resize(img *image.NRGBA, size int) *image.NRGBA {
	// nfnt hands back premultiplied RGBA; Clone brings it back to NRGBA
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
	return imaging.Clone(resized)
}
