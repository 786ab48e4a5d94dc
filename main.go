package main

import (
	"context"
	"log"
	"os"

	"github.com/acrodrig/hub/cmd"
	"github.com/acrodrig/hub/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "hub",
		Usage: "Namespaced console logging driven by environment rules",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Flip the global switch off (no output at all)",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			cmd.DemoCommand(),
			cmd.ColorsCommand(),
			cmd.WatchCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := config.Bootstrap(); err != nil {
		log.Fatalf("Failed to read HUB_* environment: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
