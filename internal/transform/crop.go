package transform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
)

// subtitleBandRatio is the fraction of the frame height, measured from the
// bottom, that carries burned-in subtitles in practice.
const subtitleBandRatio = 0.35

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// CropSubtitleRegion keeps only the bottom band of the frame, where burned-in
// subtitles live. Formats that cannot be re-encoded pass through unchanged.
func CropSubtitleRegion(_ context.Context, filename string, img []byte) ([]byte, error) {
	decoded, format, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	bounds := decoded.Bounds()
	bandTop := bounds.Max.Y - int(float64(bounds.Dy())*subtitleBandRatio)
	if bandTop <= bounds.Min.Y {
		return img, nil
	}
	si, ok := decoded.(subImager)
	if !ok {
		return img, nil
	}
	crop := si.SubImage(image.Rect(bounds.Min.X, bandTop, bounds.Max.X, bounds.Max.Y))

	var buf bytes.Buffer
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case format == "png" || ext == ".png":
		err = png.Encode(&buf, crop)
	default:
		err = jpeg.Encode(&buf, crop, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s crop: %w", filename, err)
	}
	return buf.Bytes(), nil
}
