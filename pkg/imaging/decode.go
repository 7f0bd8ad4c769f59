package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Register the formats the lesson pipeline encounters: PNG/JPEG/GIF
	// from the stdlib, BMP/TIFF/WebP from x/image, PNM from gopnm.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode indicates the file's bytes could not be decoded as any
// supported image format.
var ErrDecode = errors.New("cannot decode image")

// Decode reads and decodes an image file into packed RGB form. A
// missing or unreadable file surfaces as the underlying *os.PathError.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return FromImage(img), nil
}
