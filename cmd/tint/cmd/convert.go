package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/tint/pkg/argb"
)

func init() {
	RegisterCommand(&Command{
		Name:  "convert",
		Short: "Convert a color between its representations",
		Long: `Parse a color and print every representation of it.

The input may be a hex literal ("#rrggbb" or "#aarrggbb") or a color
name from the built-in table ("red", "SteelBlue"). Six-digit hex
implies full opacity.`,
		Usage: "tint convert <color>",
		Run:   runConvert,
	})
}

func runConvert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("color value is required\n\nUsage: tint convert <color>")
	}

	c, err := argb.Parse(args[0])
	if err != nil {
		return err
	}

	printColor(os.Stdout, c)
	return nil
}

func printColor(w io.Writer, c argb.Color) {
	v := c.Vec4(true)
	fmt.Fprintf(w, "hex:    %s\n", c)
	fmt.Fprintf(w, "uint32: 0x%08X (%d)\n", c.Uint32(), c.Uint32())
	fmt.Fprintf(w, "argb:   a=%d r=%d g=%d b=%d\n", c.A, c.R, c.G, c.B)
	fmt.Fprintf(w, "vec4:   (%.4f, %.4f, %.4f, %.4f)\n", v.X(), v.Y(), v.Z(), v.W())
}
