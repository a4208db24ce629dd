package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/urfave/cli/v2"
)

var globalFlags struct {
	configPath string
	logLevel   string
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "arnetwork",
		Usage: "read from Arweave gateways with retries on transient HTTP statuses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to a YAML/JSON config file (default: $ARNETWORK_CONFIG_PATH, then ./config.yaml)",
				Destination: &globalFlags.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "override the configured log level (debug, info, warn, error)",
				Destination: &globalFlags.logLevel,
			},
		},
		Commands: []*cli.Command{
			getCmd,
			compareCmd,
			statusesCmd,
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for bad config or input and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, common.ErrInvalidConfiguration) || errors.Is(err, common.ErrInvalidInput) {
		return 2
	}
	return 1
}
