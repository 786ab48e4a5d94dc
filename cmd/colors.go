package cmd

import (
	"context"
	"fmt"

	"github.com/acrodrig/hub/pkg/colorhash"
	"github.com/urfave/cli/v3"
)

// ColorsCommand creates the colors command
func ColorsCommand() *cli.Command {
	return &cli.Command{
		Name:      "colors",
		Usage:     "Show the palette slot and rendering for namespaces",
		ArgsUsage: "[namespace...]",
		Action: func(ctx context.Context, c *cli.Command) error {
			applyQuiet(c)
			names := c.Args().Slice()
			if len(names) == 0 {
				names = []string{"net", "net.http", "db", "db.pool", "worker", "api"}
			}
			palette := colorhash.New()
			for _, ns := range names {
				fmt.Printf("%-20s slot %d  %s\n", ns, colorhash.Index(ns), palette.Namespace(ns, true))
			}
			return nil
		},
	}
}
