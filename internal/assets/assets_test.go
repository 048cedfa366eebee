package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func writeImage(t *testing.T, name string, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := encode(f, testImage()); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestLoadImageFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(io.Writer, image.Image) error
	}{
		{"car.png", png.Encode},
		{"car.bmp", bmp.Encode},
		{"car.tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.name, tt.encode)
			img, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 8 {
				t.Errorf("bounds = %v, want 4x8", b)
			}
			r, _, _, a := img.At(1, 1).RGBA()
			if r>>8 != 255 || a>>8 != 255 {
				t.Errorf("pixel = %v, want opaque red", img.At(1, 1))
			}
		})
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Errorf("err = %v, want ErrAssetUnavailable", err)
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrAssetUnavailable) {
		t.Errorf("err = %v, want ErrAssetUnavailable", err)
	}
}
