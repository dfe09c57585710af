// Package argb provides a compact 32-bit ARGB color value type with
// conversions to and from packed integers, float vectors, and text.
//
// Color is an immutable value holding four 8-bit channels (alpha, red,
// green, blue). All operations are pure transformations: they return new
// values and never modify the receiver, so a Color is safe to share
// across goroutines without synchronization.
//
// # Representations
//
// A Color converts losslessly to and from a packed uint32 laid out as
// 0xAARRGGBB, most significant byte first:
//
//	c := argb.FromUint32(0x80FF0000) // half-transparent red
//	v := c.Uint32()                  // 0x80FF0000
//
// The textual form accepted by [Parse] is either a hex literal
// ("#rrggbb" or "#aarrggbb") or a color name ("red", "SteelBlue")
// resolved against the built-in named-color table. [Color.String]
// always produces the canonical 9-character "#aarrggbb" form, so
// Parse(c.String()) round-trips for every value.
//
// Float vector interchange uses [mgl32.Vec4] with lanes (X, Y, Z, W)
// mapped to (R, G, B, A), either normalized to [0, 1] or in raw byte
// range, selected by an explicit flag.
package argb
