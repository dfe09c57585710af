package argb

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// names is the built-in named-color table, keyed by lowercase name.
// Built once at startup from the SVG 1.1 color set plus "transparent";
// no runtime reflection is involved.
var names = buildNames()

func buildNames() map[string]Color {
	m := make(map[string]Color, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = FromARGB(c.A, c.R, c.G, c.B)
	}
	m["transparent"] = Transparent
	return m
}

// Named looks up a color by name, case-insensitively.
// The second return value reports whether the name is known.
func Named(name string) (Color, bool) {
	c, ok := names[strings.ToLower(name)]
	return c, ok
}

// Names returns all known color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
