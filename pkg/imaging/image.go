// Package imaging provides the raw RGB raster type shared by the
// authoring tools and the decode/encode glue around it.
package imaging

import "image"

// Image is a W×H grid of 8-bit RGB pixels, row-major, 3 bytes per pixel.
// Tools treat a decoded Image as read-only.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed RGB image.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// RGBAt returns the pixel at (x, y). Coordinates must be in bounds.
func (m *Image) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// SetRGB stores the pixel at (x, y). Coordinates must be in bounds.
func (m *Image) SetRGB(x, y int, r, g, b uint8) {
	i := (y*m.Width + x) * 3
	m.Pix[i] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
}

// FromImage converts any decoded image.Image to the packed RGB form,
// dropping alpha.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	m := New(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			m.Pix[i] = uint8(r >> 8)
			m.Pix[i+1] = uint8(g >> 8)
			m.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return m
}

// ToNRGBA converts the packed RGB form back to an image.NRGBA with
// full alpha, for handing to the stdlib encoders.
func (m *Image) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	src := 0
	for y := 0; y < m.Height; y++ {
		dst := y * img.Stride
		for x := 0; x < m.Width; x++ {
			img.Pix[dst] = m.Pix[src]
			img.Pix[dst+1] = m.Pix[src+1]
			img.Pix[dst+2] = m.Pix[src+2]
			img.Pix[dst+3] = 0xff
			src += 3
			dst += 4
		}
	}
	return img
}
