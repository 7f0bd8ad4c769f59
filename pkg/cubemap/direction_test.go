package cubemap

import (
	"math"
	"testing"

	vmath "github.com/RosyGameStudio/forge-gpu-sub000/pkg/math"
)

func TestDirectionFieldUnitLength(t *testing.T) {
	const n = 16
	for _, f := range Faces {
		dirs := DirectionField(f, n)
		if len(dirs) != n*n {
			t.Fatalf("face %s: expected %d directions, got %d", f, n*n, len(dirs))
		}
		for i, d := range dirs {
			if math.Abs(d.Length()-1) > 1e-6 {
				t.Errorf("face %s pixel %d: |dir| = %v, want 1", f, i, d.Length())
			}
		}
	}
}

func TestDirectionFieldCorners(t *testing.T) {
	// Row 0 is the top of the face, so the first sample of +Z is the
	// face's top-left corner (u=-1, v=+1).
	dirs := DirectionField(PosZ, 4)

	want := vmath.Vec3{X: -1, Y: 1, Z: 1}.Normalize()
	if got := dirs[0]; !closeVec(got, want) {
		t.Errorf("top-left of +Z = %v, want %v", got, want)
	}

	want = vmath.Vec3{X: 1, Y: -1, Z: 1}.Normalize()
	if got := dirs[15]; !closeVec(got, want) {
		t.Errorf("bottom-right of +Z = %v, want %v", got, want)
	}
}

func TestDirectionFieldSingleSample(t *testing.T) {
	for _, f := range Faces {
		dirs := DirectionField(f, 1)
		if len(dirs) != 1 {
			t.Fatalf("face %s: expected 1 direction, got %d", f, len(dirs))
		}
		want := faceBases[f].forward
		if !closeVec(dirs[0], want) {
			t.Errorf("face %s center = %v, want %v", f, dirs[0], want)
		}
	}
}

// Neighboring faces must produce the same direction at matching edge
// pixels, otherwise the resampled faces show a seam.
func TestSharedEdgesMatch(t *testing.T) {
	const n = 9

	fields := make(map[Face][]vmath.Vec3)
	for _, f := range Faces {
		fields[f] = DirectionField(f, n)
	}

	leftCol := func(f Face, row int) vmath.Vec3 { return fields[f][row*n] }
	rightCol := func(f Face, row int) vmath.Vec3 { return fields[f][row*n+n-1] }
	topRow := func(f Face, col int) vmath.Vec3 { return fields[f][col] }
	botRow := func(f Face, col int) vmath.Vec3 { return fields[f][(n-1)*n+col] }

	type seam struct {
		name string
		a, b func(int) vmath.Vec3
	}
	seams := []seam{
		{"+Z right / +X left", func(i int) vmath.Vec3 { return rightCol(PosZ, i) }, func(i int) vmath.Vec3 { return leftCol(PosX, i) }},
		{"+X right / -Z left", func(i int) vmath.Vec3 { return rightCol(PosX, i) }, func(i int) vmath.Vec3 { return leftCol(NegZ, i) }},
		{"-Z right / -X left", func(i int) vmath.Vec3 { return rightCol(NegZ, i) }, func(i int) vmath.Vec3 { return leftCol(NegX, i) }},
		{"-X right / +Z left", func(i int) vmath.Vec3 { return rightCol(NegX, i) }, func(i int) vmath.Vec3 { return leftCol(PosZ, i) }},
		{"+Y bottom / +Z top", func(i int) vmath.Vec3 { return botRow(PosY, i) }, func(i int) vmath.Vec3 { return topRow(PosZ, i) }},
		{"-Y top / +Z bottom", func(i int) vmath.Vec3 { return topRow(NegY, i) }, func(i int) vmath.Vec3 { return botRow(PosZ, i) }},
	}

	for _, s := range seams {
		for i := 0; i < n; i++ {
			a, b := s.a(i), s.b(i)
			if !closeVec(a, b) {
				t.Errorf("seam %s pixel %d: %v vs %v", s.name, i, a, b)
			}
		}
	}
}

func closeVec(a, b vmath.Vec3) bool {
	const eps = 1e-12
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
