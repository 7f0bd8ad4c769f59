package capture

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames indicates the frame directory held no usable PNG frames.
var ErrNoFrames = errors.New("no PNG frames found")

// AssembleGIF encodes the PNG frames in frameDir (sorted by filename)
// into a looping GIF at the given frame rate. scale under 1.0 shrinks
// each frame before quantization, which keeps lesson clips small.
func AssembleGIF(frameDir, outPath string, fps, scale float64) error {
	if fps <= 0 {
		fps = 10
	}

	paths, err := filepath.Glob(filepath.Join(frameDir, "*.png"))
	if err != nil {
		return err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFrames, frameDir)
	}

	delay := int(100 / fps) // centiseconds per frame
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{LoopCount: 0}
	for _, p := range paths {
		frame, err := loadFrame(p, scale)
		if err != nil {
			return fmt.Errorf("frame %s: %w", p, err)
		}

		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encoding GIF: %w", err)
	}
	return nil
}

func loadFrame(path string, scale float64) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	if scale <= 0 || scale == 1 {
		return img, nil
	}

	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst, nil
}
