// Package palette provides named collections of ARGB colors and
// loading of YAML palette files.
//
// A palette file looks like:
//
//	name: ocean
//	colors:
//	  accent: "#ff2e86ab"
//	  foam: "#a3d5e0"
//	  deep: navy
//
// Color values accept every form understood by [argb.Parse]: hex
// literals with or without explicit alpha, and named colors.
package palette

import (
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tint/pkg/argb"
	"github.com/go-drift/tint/pkg/errors"
)

// Palette is a named collection of colors keyed by entry name.
type Palette struct {
	Name   string                `yaml:"name,omitempty"`
	Colors map[string]argb.Color `yaml:"colors"`
}

// New creates an empty palette with the given name.
func New(name string) *Palette {
	return &Palette{Name: name, Colors: map[string]argb.Color{}}
}

// Decode reads a YAML palette document from r.
func Decode(r io.Reader) (*Palette, error) {
	var p Palette
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	if p.Colors == nil {
		p.Colors = map[string]argb.Color{}
	}
	return &p, nil
}

// Load reads a YAML palette file from disk. Failures are reported as
// a [*errors.ConfigError] carrying the path; malformed color values
// additionally wrap the [errors.FormatError] from [argb.Parse].
func Load(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}
	return p, nil
}

// Encode writes the palette as a YAML document to w.
// Colors are emitted in the canonical "#aarrggbb" form.
func (p *Palette) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Lookup resolves an entry case-insensitively. Palette entries shadow
// the built-in named-color table; unknown entries fall through to it.
func (p *Palette) Lookup(name string) (argb.Color, bool) {
	for entry, c := range p.Colors {
		if strings.EqualFold(entry, name) {
			return c, true
		}
	}
	return argb.Named(name)
}

// Set adds or replaces an entry.
func (p *Palette) Set(name string, c argb.Color) {
	if p.Colors == nil {
		p.Colors = map[string]argb.Color{}
	}
	p.Colors[name] = c
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}
