package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"perlinmap/pkg/heightmap"
)

// GrayImage copies a raster into an image.Gray.
func GrayImage(r *heightmap.Raster) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+r.W], r.Pix[y*r.W:(y+1)*r.W])
	}
	return img
}

// EncodePNG writes r as a grayscale PNG.
func EncodePNG(w io.Writer, r *heightmap.Raster) error {
	if r == nil || r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("encode png: empty raster")
	}
	if err := png.Encode(w, GrayImage(r)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes r to path, creating parent directories as needed.
func SavePNG(path string, r *heightmap.Raster) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := EncodePNG(file, r); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
