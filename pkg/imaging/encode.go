package imaging

import (
	"fmt"
	"image/png"
	"os"

	pnm "github.com/jbuchbinder/gopnm"
)

// EncodePNG writes the image to path as PNG.
func EncodePNG(path string, m *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, m.ToNRGBA()); err != nil {
		return fmt.Errorf("encoding PNG %s: %w", path, err)
	}
	return nil
}

// EncodePPM writes the image to path as binary PPM.
func EncodePPM(path string, m *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := pnm.Encode(f, m.ToNRGBA(), pnm.PPM); err != nil {
		return fmt.Errorf("encoding PPM %s: %w", path, err)
	}
	return nil
}
