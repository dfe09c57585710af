package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/tint/pkg/argb"
)

func init() {
	RegisterCommand(&Command{
		Name:  "names",
		Short: "List known color names",
		Long: `List the color names accepted by the parser, with their values.

With a prefix argument, only names starting with that prefix (matched
case-insensitively) are shown.`,
		Usage: "tint names [prefix]",
		Run:   runNames,
	})
}

func runNames(args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToLower(args[0])
	}

	shown := 0
	for _, name := range argb.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		c, _ := argb.Named(name)
		fmt.Printf("%-22s %s\n", name, c)
		shown++
	}

	if shown == 0 {
		return fmt.Errorf("no color names start with %q", prefix)
	}
	return nil
}
