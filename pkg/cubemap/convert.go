package cubemap

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/imaging"
)

// AspectTolerance is how far the source's width/height ratio may
// deviate from the equirectangular 2:1 before the input is rejected.
const AspectTolerance = 0.02

// Validation errors.
var (
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio: equirectangular input must be 2:1")
	ErrInvalidSize        = errors.New("invalid face size: must be a positive integer")
)

// ValidateAspect checks the source against the 2:1 equirectangular
// geometry (longitude spans 2π, latitude spans π).
func ValidateAspect(src *imaging.Image) error {
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidAspectRatio, src.Width, src.Height)
	}
	ratio := float64(src.Width) / float64(src.Height)
	if math.Abs(ratio-2.0) > AspectTolerance {
		return fmt.Errorf("%w: got %dx%d (ratio %.3f)", ErrInvalidAspectRatio, src.Width, src.Height, ratio)
	}
	return nil
}

// RenderFace resamples one size×size face from the panorama.
func RenderFace(src *imaging.Image, f Face, size int) *imaging.Image {
	dirs := DirectionField(f, size)
	face := imaging.New(size, size)
	for i, dir := range dirs {
		uv := Project(dir)
		r, g, b := Sample(src, uv.X, uv.Y)
		face.Pix[i*3] = r
		face.Pix[i*3+1] = g
		face.Pix[i*3+2] = b
	}
	return face
}

// Convert resamples the panorama into six size×size faces, returned
// in Faces order. Validation runs before any face is touched; the
// faces themselves are independent and computed concurrently.
func Convert(src *imaging.Image, size int) ([6]*imaging.Image, error) {
	var out [6]*imaging.Image

	if size <= 0 {
		return out, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := ValidateAspect(src); err != nil {
		return out, err
	}

	var wg sync.WaitGroup
	for i, f := range Faces {
		wg.Add(1)
		go func(i int, f Face) {
			defer wg.Done()
			out[i] = RenderFace(src, f, size)
		}(i, f)
	}
	wg.Wait()

	return out, nil
}
