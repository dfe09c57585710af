package argb

import "github.com/go-gl/mathgl/mgl32"

// FromVec4 constructs a Color from a 4-lane float vector with lanes
// (X, Y, Z, W) mapped to channels (R, G, B, A).
//
// When normalized is true, each lane is expected in [0, 1] and is
// scaled by 255 before conversion. Otherwise lanes are taken as raw
// byte values in [0, 255]. In both modes the fractional part is
// truncated, not rounded, and out-of-range values wrap modulo 256
// instead of clamping; keeping lanes in range is the caller's job.
func FromVec4(v mgl32.Vec4, normalized bool) Color {
	scale := float32(1)
	if normalized {
		scale = 255
	}
	return Color{
		A: truncByte(v.W() * scale),
		R: truncByte(v.X() * scale),
		G: truncByte(v.Y() * scale),
		B: truncByte(v.Z() * scale),
	}
}

// Vec4 returns the color as a 4-lane float vector, lanes (X, Y, Z, W)
// holding (R, G, B, A). When normalized is true each lane is divided
// by 255, giving values in [0, 1].
func (c Color) Vec4(normalized bool) mgl32.Vec4 {
	v := mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
	if normalized {
		return v.Mul(1.0 / 255.0)
	}
	return v
}

// truncByte truncates f toward zero and reduces it modulo 256. The
// int64 intermediate keeps the wrap deterministic; a direct float to
// uint8 conversion is implementation-specific out of range.
func truncByte(f float32) uint8 {
	return uint8(int64(f))
}
