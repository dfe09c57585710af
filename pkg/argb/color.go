package argb

import "image/color"

// Color is a 32-bit ARGB color with four 8-bit channels.
// The zero value is fully transparent black.
type Color struct {
	A, R, G, B uint8
}

// FromARGB constructs a Color from alpha, red, green, blue bytes.
func FromARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromRGB constructs an opaque Color from red, green, blue bytes.
func FromRGB(r, g, b uint8) Color {
	return FromARGB(0xFF, r, g, b)
}

// FromUint32 unpacks a Color from a 0xAARRGGBB integer.
func FromUint32(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Uint32 packs the color into a 0xAARRGGBB integer.
func (c Color) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// WithAlpha returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// IsOpaque reports whether the alpha channel is fully opaque.
func (c Color) IsOpaque() bool {
	return c.A == 0xFF
}

// NRGBA converts the color to the standard library's non-premultiplied
// RGBA representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the [color.Color] interface, returning
// alpha-premultiplied channels widened to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Lerp linearly interpolates each channel between a and b.
// t is clamped to [0, 1]; t=0 returns a, t=1 returns b.
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Color{
		A: lerpByte(a.A, b.A, t),
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Common colors.
var (
	Transparent = Color{}
	Black       = FromRGB(0, 0, 0)
	White       = FromRGB(0xFF, 0xFF, 0xFF)
	Red         = FromRGB(0xFF, 0, 0)
	Green       = FromRGB(0, 0xFF, 0)
	Blue        = FromRGB(0, 0, 0xFF)
)
