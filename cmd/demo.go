package cmd

import (
	"context"
	"time"

	"github.com/acrodrig/hub/pkg/hub"
	"github.com/urfave/cli/v3"
)

// DemoCommand creates the demo command
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Emit sample output across namespaces and levels, honoring HUB_* rules",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "namespace",
				Usage: "Namespace(s) to emit under. Can be used multiple times",
				Value: []string{"net", "net.http", "db", "worker"},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyQuiet(c)
			for _, ns := range c.StringSlice("namespace") {
				l := hub.Get(ns)
				l.Debug("connection pool state", map[string]int{"idle": 3, "busy": 9})
				l.Info("ready, effective level is", l.LevelName())
				time.Sleep(5 * time.Millisecond)
				l.Warn("slow response", 412*time.Millisecond)
				l.Error("upstream failed", []string{"retry", "backoff"})
				l.Log("always printed unless gated or disabled")
			}
			return nil
		},
	}
}

// applyQuiet honors the root-level --quiet flag from any subcommand.
func applyQuiet(c *cli.Command) {
	if c.Bool("quiet") {
		hub.SetEnabled(false)
	}
}
