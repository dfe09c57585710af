package argb

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFromVec4Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    mgl32.Vec4
		want Color
	}{
		{"opaque red", mgl32.Vec4{1, 0, 0, 1}, FromARGB(255, 255, 0, 0)},
		{"opaque white", mgl32.Vec4{1, 1, 1, 1}, White},
		{"transparent black", mgl32.Vec4{0, 0, 0, 0}, Transparent},
		// 0.5*255 = 127.5 truncates to 127, never rounds up.
		{"half truncates", mgl32.Vec4{0.5, 0.5, 0.5, 0.5}, FromARGB(127, 127, 127, 127)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromVec4(tt.v, true); got != tt.want {
				t.Errorf("FromVec4(%v, true) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFromVec4Raw(t *testing.T) {
	tests := []struct {
		name string
		v    mgl32.Vec4
		want Color
	}{
		{"exact bytes", mgl32.Vec4{255, 128, 64, 255}, FromARGB(255, 255, 128, 64)},
		{"fraction discarded", mgl32.Vec4{254.9, 0.9, 1.1, 255}, FromARGB(255, 254, 0, 1)},
		// Out-of-range lanes wrap modulo 256 instead of clamping.
		{"256 wraps to 0", mgl32.Vec4{256, 0, 0, 255}, FromARGB(255, 0, 0, 0)},
		{"300 wraps to 44", mgl32.Vec4{300, 0, 0, 255}, FromARGB(255, 44, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromVec4(tt.v, false); got != tt.want {
				t.Errorf("FromVec4(%v, false) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec4LaneOrder(t *testing.T) {
	c := FromARGB(10, 20, 30, 40)
	v := c.Vec4(false)
	if v.X() != 20 || v.Y() != 30 || v.Z() != 40 || v.W() != 10 {
		t.Errorf("Vec4(false) = %v, want lanes (R, G, B, A) = (20, 30, 40, 10)", v)
	}
}

func TestVec4RoundTrip(t *testing.T) {
	colors := []Color{
		Transparent,
		White,
		FromARGB(0x80, 0x12, 0x34, 0x56),
	}

	for _, c := range colors {
		if got := FromVec4(c.Vec4(false), false); got != c {
			t.Errorf("raw round trip of %v = %v", c, got)
		}
	}
}

func TestVec4Normalized(t *testing.T) {
	v := White.Vec4(true)
	if v.X() != 1 || v.Y() != 1 || v.Z() != 1 || v.W() != 1 {
		t.Errorf("White.Vec4(true) = %v, want all lanes 1", v)
	}
}
