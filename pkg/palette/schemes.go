package palette

import "github.com/go-drift/tint/pkg/argb"

// Light returns the built-in light UI scheme.
func Light() *Palette {
	return &Palette{
		Name: "light",
		Colors: map[string]argb.Color{
			"primary":          argb.MustParse("#6750a4"),
			"onprimary":        argb.MustParse("#ffffff"),
			"surface":          argb.MustParse("#fffbfe"),
			"onsurface":        argb.MustParse("#1c1b1f"),
			"surfacevariant":   argb.MustParse("#e7e0ec"),
			"onsurfacevariant": argb.MustParse("#49454f"),
			"background":       argb.MustParse("#fffbfe"),
			"onbackground":     argb.MustParse("#1c1b1f"),
			"error":            argb.MustParse("#b3261e"),
			"scrim":            argb.MustParse("#80000000"),
		},
	}
}

// Dark returns the built-in dark UI scheme.
func Dark() *Palette {
	return &Palette{
		Name: "dark",
		Colors: map[string]argb.Color{
			"primary":          argb.MustParse("#d0bcff"),
			"onprimary":        argb.MustParse("#381e72"),
			"surface":          argb.MustParse("#1c1b1f"),
			"onsurface":        argb.MustParse("#e6e1e5"),
			"surfacevariant":   argb.MustParse("#49454f"),
			"onsurfacevariant": argb.MustParse("#cac4d0"),
			"background":       argb.MustParse("#1c1b1f"),
			"onbackground":     argb.MustParse("#e6e1e5"),
			"error":            argb.MustParse("#f2b8b5"),
			"scrim":            argb.MustParse("#80000000"),
		},
	}
}
