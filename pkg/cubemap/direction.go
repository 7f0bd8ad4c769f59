package cubemap

import (
	vmath "github.com/RosyGameStudio/forge-gpu-sub000/pkg/math"
)

// localCoord maps sample index i of n to the closed interval [-1, 1].
// The endpoints are included: edge pixels of neighboring faces must
// land on exactly the same direction or a seam becomes visible.
func localCoord(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return -1 + 2*float64(i)/float64(n-1)
}

// DirectionField returns the n×n grid of unit direction vectors for
// one face, row-major. Row 0 is the top of the face (maximum local v).
func DirectionField(f Face, n int) []vmath.Vec3 {
	b := faceBases[f]
	dirs := make([]vmath.Vec3, n*n)

	for row := 0; row < n; row++ {
		v := -localCoord(row, n)
		for col := 0; col < n; col++ {
			u := localCoord(col, n)
			dir := b.forward.Add(b.right.Scale(u)).Add(b.up.Scale(v))
			dirs[row*n+col] = dir.Normalize()
		}
	}
	return dirs
}
