package services

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"launcher-icon-generator/models"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // webp sources
)

// IHDR color type byte of a PNG file
const (
	pngColorTypeOffset    = 25
	pngColorTypeGrayAlpha = 4
)

// sourceEntry is a decoded source normalised to RGBA. It is valid while the
// file content hashes to digest.
type sourceEntry struct {
	img    *image.NRGBA
	info   models.SourceInfo
	digest [sha256.Size]byte
}

// load returns the decoded source, from the cache when the file content is unchanged.
func (s *ResizingService) load(path string) (*sourceEntry, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, false, fmt.Errorf("failed to read source: %w", err)
	}
	digest := sha256.Sum256(data)

	if v, ok := s.Cache.Get(path); ok {
		if entry := v.(*sourceEntry); entry.digest == digest {
			return entry, true, nil
		}
	}

	entry, err := decodeSource(path, data)
	if err != nil {
		return nil, false, err
	}
	entry.digest = digest
	s.Cache.Add(path, entry)
	return entry, false, nil
}

func decodeSource(path string, data []byte) (*sourceEntry, error) {
	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, path, err)
	}

	mode := colorMode(imgCfg.ColorModel)
	// the png decoder hands gray+alpha back as NRGBA
	if format == "png" && len(data) > pngColorTypeOffset && data[pngColorTypeOffset] == pngColorTypeGrayAlpha {
		mode = "LA"
	}

	return &sourceEntry{
		img: imaging.Clone(img),
		info: models.SourceInfo{
			Path:   path,
			Format: format,
			Width:  imgCfg.Width,
			Height: imgCfg.Height,
			Mode:   mode,
		},
	}, nil
}

// colorMode names a decoder's color model the way imaging tools report
// pixel layouts. Decoders use RGBAModel for sources without alpha and
// NRGBAModel for sources with it.
func colorMode(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "P"
	}
	switch m {
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	default:
		return "unknown"
	}
}
