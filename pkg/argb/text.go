package argb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/tint/pkg/errors"
)

// Parse interprets s as a textual color.
//
// A string starting with '#' is a hex literal: "#rrggbb" (alpha forced
// to 0xFF) or "#aarrggbb". Hex digits may be upper or lower case.
// Anything else is matched case-insensitively against the named-color
// table. Malformed input fails with an error wrapping an
// [errors.FormatError] that carries the offending string.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return Color{}, parseError(s)
}

func parseHex(s string) (Color, error) {
	// "#" plus 6 or 8 hex digits.
	if len(s) != 7 && len(s) != 9 {
		return Color{}, parseError(s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, parseError(s)
	}
	if len(s) == 7 {
		v |= 0xFF000000
	}
	return FromUint32(uint32(v)), nil
}

func parseError(s string) error {
	return &errors.Error{
		Op:   "argb.Parse",
		Kind: errors.KindFormat,
		Err:  &errors.FormatError{Input: s},
	}
}

// MustParse is like [Parse] but panics on malformed input.
// Intended for package-level initializers with literal inputs.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical textual form "#aarrggbb": lowercase
// hex, zero-padded, alpha first. Parse accepts this form back.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.Uint32())
}

// MarshalText implements [encoding.TextMarshaler] using the canonical
// "#aarrggbb" form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] via [Parse].
// It makes Color usable directly in JSON documents and flag values.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
