package cubemap

import (
	"errors"
	"testing"

	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/imaging"
)

func TestConvertRejectsBadAspect(t *testing.T) {
	src := imaging.New(800, 300) // ratio 2.667
	_, err := Convert(src, 16)
	if !errors.Is(err, ErrInvalidAspectRatio) {
		t.Errorf("expected ErrInvalidAspectRatio, got %v", err)
	}
}

func TestConvertAcceptsExactAspect(t *testing.T) {
	src := imaging.New(2048, 1024)
	faces, err := Convert(src, 4)
	if err != nil {
		t.Fatalf("Convert failed on 2:1 input: %v", err)
	}
	for i, face := range faces {
		if face == nil {
			t.Fatalf("face %s is nil", Faces[i])
		}
		if face.Width != 4 || face.Height != 4 {
			t.Errorf("face %s is %dx%d, want 4x4", Faces[i], face.Width, face.Height)
		}
	}
}

func TestConvertRejectsBadSize(t *testing.T) {
	src := imaging.New(4, 2)
	for _, size := range []int{0, -4} {
		_, err := Convert(src, size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestConvertSolidRed(t *testing.T) {
	src := solidImage(4, 2, 255, 0, 0)

	faces, err := Convert(src, 2)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for i, face := range faces {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				r, g, b := face.RGBAt(x, y)
				if r != 255 || g != 0 || b != 0 {
					t.Errorf("face %s pixel (%d,%d) = %d,%d,%d, want pure red",
						Faces[i], x, y, r, g, b)
				}
			}
		}
	}
}

func TestValidateAspectTolerance(t *testing.T) {
	// 2.01 sits inside the tolerance window; 2.04 is outside it.
	if err := ValidateAspect(imaging.New(201, 100)); err != nil {
		t.Errorf("ratio 2.01 should pass, got %v", err)
	}
	if err := ValidateAspect(imaging.New(204, 100)); !errors.Is(err, ErrInvalidAspectRatio) {
		t.Errorf("ratio 2.04 should fail, got %v", err)
	}
}
