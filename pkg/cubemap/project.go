package cubemap

import (
	"math"

	vmath "github.com/RosyGameStudio/forge-gpu-sub000/pkg/math"
)

// Project maps a unit direction onto the panorama's parameterization.
// u derives from longitude (atan2(x, z), so u = 0.5 looks down +Z);
// v derives from latitude, with v = 0 at the north pole and v = 1 at
// the south pole.
func Project(dir vmath.Vec3) vmath.Vec2 {
	lon := math.Atan2(dir.X, dir.Z)

	// Normalization can leave y a hair outside [-1, 1]; asin would
	// return NaN there.
	y := dir.Y
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}
	lat := math.Asin(y)

	return vmath.Vec2{
		X: lon/(2*math.Pi) + 0.5,
		Y: 0.5 - lat/math.Pi,
	}
}
