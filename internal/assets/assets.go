// Package assets loads sprite images from disk.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrAssetUnavailable is returned when an image cannot be read or decoded.
// Games render a placeholder instead.
var ErrAssetUnavailable = errors.New("assets: asset unavailable")

// LoadImage opens and decodes the image at path.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetUnavailable, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes an image from r and rejects empty images.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrAssetUnavailable, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrAssetUnavailable)
	}
	return img, nil
}
