package cubemap

import (
	"math"

	"github.com/RosyGameStudio/forge-gpu-sub000/pkg/imaging"
)

// Sample bilinearly interpolates the panorama at continuous (u, v).
// u wraps modulo 1 because longitude is cyclic; v clamps because
// latitude terminates at the poles. Every fetch is therefore in
// bounds for any real-valued input.
func Sample(src *imaging.Image, u, v float64) (r, g, b uint8) {
	// Texel centers sit at integer coordinates after the -0.5 shift.
	px := u*float64(src.Width) - 0.5
	py := v*float64(src.Height) - 0.5

	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	fx := px - float64(x0)
	fy := py - float64(y0)

	x1 := wrapX(x0+1, src.Width)
	x0 = wrapX(x0, src.Width)
	y1 := clampY(y0+1, src.Height)
	y0 = clampY(y0, src.Height)

	stride := src.Width * 3
	i00 := y0*stride + x0*3
	i10 := y0*stride + x1*3
	i01 := y1*stride + x0*3
	i11 := y1*stride + x1*3

	pix := src.Pix
	r = blend(pix[i00], pix[i10], pix[i01], pix[i11], fx, fy)
	g = blend(pix[i00+1], pix[i10+1], pix[i01+1], pix[i11+1], fx, fy)
	b = blend(pix[i00+2], pix[i10+2], pix[i01+2], pix[i11+2], fx, fy)
	return r, g, b
}

// blend interpolates one channel in lerp form. Lerp of equal corner
// values returns that value exactly, so solid-color inputs survive
// resampling untouched.
func blend(p00, p10, p01, p11 uint8, fx, fy float64) uint8 {
	top := lerp(float64(p00), float64(p10), fx)
	bot := lerp(float64(p01), float64(p11), fx)
	val := lerp(top, bot, fy) + 0.5
	if val > 255 {
		val = 255
	} else if val < 0 {
		val = 0
	}
	return uint8(val)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// wrapX reduces x modulo w, mapping negatives into [0, w).
func wrapX(x, w int) int {
	x %= w
	if x < 0 {
		x += w
	}
	return x
}

// clampY pins y to [0, h-1].
func clampY(y, h int) int {
	if y < 0 {
		return 0
	}
	if y >= h {
		return h - 1
	}
	return y
}
