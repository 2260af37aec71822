package services

import (
	"bytes"
	"image"
	"image/png"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// alphaImage keeps the PNG encoder from dropping the alpha channel when
// every pixel is opaque, so icons are always written as 8-bit RGBA.
type alphaImage struct {
	*image.NRGBA
}

func (alphaImage) Opaque() bool {
	return false
}

func encodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, alphaImage{img}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
