// Package cubemap resamples an equirectangular panorama into the six
// square faces of a cube map.
package cubemap

import (
	vmath "github.com/RosyGameStudio/forge-gpu-sub000/pkg/math"
)

// Face identifies one of the six cube map faces.
type Face int

// The six faces, in the fixed output order.
const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// Faces lists all faces in output order.
var Faces = [6]Face{PosX, NegX, PosY, NegY, PosZ, NegZ}

var faceCodes = [6]string{"px", "nx", "py", "ny", "pz", "nz"}

// Code returns the short face code used in output filenames.
func (f Face) Code() string {
	return faceCodes[f]
}

// String returns the axis name, e.g. "+X".
func (f Face) String() string {
	names := [6]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}
	if f < PosX || f > NegZ {
		return "invalid face"
	}
	return names[f]
}

// basis describes how face-local (u, v) coordinates, with v pointing
// up, combine into a world direction: dir = forward + right·u + up·v.
type basis struct {
	forward vmath.Vec3
	right   vmath.Vec3
	up      vmath.Vec3
}

// faceBases assigns each face its outward axis and the two driven
// axes. The table is chosen so that directions along shared edges are
// identical between neighboring faces (e.g. the right edge of +Z and
// the left edge of +X both evaluate to (1, v, 1)).
var faceBases = [6]basis{
	PosX: {forward: vmath.Vec3{X: 1}, right: vmath.Vec3{Z: -1}, up: vmath.Vec3{Y: 1}},
	NegX: {forward: vmath.Vec3{X: -1}, right: vmath.Vec3{Z: 1}, up: vmath.Vec3{Y: 1}},
	PosY: {forward: vmath.Vec3{Y: 1}, right: vmath.Vec3{X: 1}, up: vmath.Vec3{Z: -1}},
	NegY: {forward: vmath.Vec3{Y: -1}, right: vmath.Vec3{X: 1}, up: vmath.Vec3{Z: 1}},
	PosZ: {forward: vmath.Vec3{Z: 1}, right: vmath.Vec3{X: 1}, up: vmath.Vec3{Y: 1}},
	NegZ: {forward: vmath.Vec3{Z: -1}, right: vmath.Vec3{X: -1}, up: vmath.Vec3{Y: 1}},
}
