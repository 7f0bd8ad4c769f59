package cubemap

import (
	"math"
	"testing"

	vmath "github.com/RosyGameStudio/forge-gpu-sub000/pkg/math"
)

func TestProjectCardinalDirections(t *testing.T) {
	cases := []struct {
		name string
		dir  vmath.Vec3
		u, v float64
	}{
		{"+Z center", vmath.Vec3{Z: 1}, 0.5, 0.5},
		{"+X quarter turn", vmath.Vec3{X: 1}, 0.75, 0.5},
		{"-X quarter turn", vmath.Vec3{X: -1}, 0.25, 0.5},
		{"north pole", vmath.Vec3{Y: 1}, 0.5, 0},
		{"south pole", vmath.Vec3{Y: -1}, 0.5, 1},
	}

	for _, tc := range cases {
		uv := Project(tc.dir)
		if math.Abs(uv.X-tc.u) > 1e-9 || math.Abs(uv.Y-tc.v) > 1e-9 {
			t.Errorf("%s: Project = (%v, %v), want (%v, %v)", tc.name, uv.X, uv.Y, tc.u, tc.v)
		}
	}
}

func TestProjectClampsLatitude(t *testing.T) {
	// Slightly over-unit y from float error must not produce NaN.
	uv := Project(vmath.Vec3{Y: 1 + 1e-9})
	if math.IsNaN(uv.Y) {
		t.Error("Project returned NaN for y slightly above 1")
	}
	if uv.Y != 0 {
		t.Errorf("Project v = %v, want 0 at the north pole", uv.Y)
	}
}
