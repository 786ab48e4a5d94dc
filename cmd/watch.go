package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acrodrig/hub/pkg/config"
	"github.com/acrodrig/hub/pkg/hub"
	"github.com/urfave/cli/v3"
)

// WatchCommand creates the watch command
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Apply a TOML rules file and reapply it on every change",
		ArgsUsage: "<rules.toml>",
		Action: func(ctx context.Context, c *cli.Command) error {
			applyQuiet(c)
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("a rules file path is required")
			}

			watchCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Println("\nShutting down...")
				cancel()
			}()

			// Emit a heartbeat so rule changes are immediately visible.
			go func() {
				l := hub.Get("hub.watch")
				ticker := time.NewTicker(2 * time.Second)
				defer ticker.Stop()
				for {
					select {
					case <-watchCtx.Done():
						return
					case <-ticker.C:
						l.Debug("heartbeat (debug)")
						l.Info("heartbeat (info), level", l.LevelName())
					}
				}
			}()

			fmt.Printf("Watching rules file for changes: %s\n", path)
			err := config.Watch(watchCtx, path, hub.Default())
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}
