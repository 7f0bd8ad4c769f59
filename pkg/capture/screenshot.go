// Package capture writes screenshots and assembles GIF clips for the
// lesson documentation.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// TimestampName builds a collision-free output filename like
// dir/prefix_2026-08-26_14-03-07.ext.
func TimestampName(dir, prefix, ext string) string {
	name := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02_15-04-05"), ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// SaveFramePixels writes a raw RGBA readback as a timestamped PNG.
// pixels must hold width*height*4 bytes, bottom-up as GL returns
// them; rows are flipped during the copy.
func SaveFramePixels(dir, prefix string, pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return SaveImage(dir, prefix, img)
}

// SaveImage writes any image as a timestamped PNG.
func SaveImage(dir, prefix string, img image.Image) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := TimestampName(dir, prefix, "png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}
