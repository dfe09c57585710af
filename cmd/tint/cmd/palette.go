package cmd

import (
	"fmt"
	"sort"

	"github.com/go-drift/tint/pkg/palette"
)

func init() {
	RegisterCommand(&Command{
		Name:  "palette",
		Short: "Validate and print a YAML palette file",
		Long: `Load a YAML palette file, check every color value, and print
the entries in sorted order.

A palette file maps entry names to color values:

  name: ocean
  colors:
    accent: "#ff2e86ab"
    deep: navy

Exits non-zero if the file cannot be read or any value fails to parse.`,
		Usage: "tint palette <file>",
		Run:   runPalette,
	})
}

func runPalette(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("palette file is required\n\nUsage: tint palette <file>")
	}

	p, err := palette.Load(args[0])
	if err != nil {
		return err
	}

	if p.Name != "" {
		fmt.Printf("palette %q: %d entries\n", p.Name, p.Len())
	} else {
		fmt.Printf("%d entries\n", p.Len())
	}

	entries := make([]string, 0, p.Len())
	for name := range p.Colors {
		entries = append(entries, name)
	}
	sort.Strings(entries)

	for _, name := range entries {
		fmt.Printf("  %-22s %s\n", name, p.Colors[name])
	}
	return nil
}
