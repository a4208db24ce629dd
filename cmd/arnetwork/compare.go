package main

import (
	"fmt"

	"github.com/ardriveapp/arnetwork/internal/differ"
	"github.com/urfave/cli/v2"
)

var compareFlags struct {
	gatewayA string
	gatewayB string
	color    bool
}

var compareCmd = &cli.Command{
	Name:      "compare",
	Usage:     "fetch the same path from two gateways and diff the responses",
	ArgsUsage: "PATH",
	Action:    runCompareCmd,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "gateway-a",
			Usage:       "first gateway base URL (default from config)",
			Destination: &compareFlags.gatewayA,
		},
		&cli.StringFlag{
			Name:        "gateway-b",
			Usage:       "second gateway base URL (default from config)",
			Destination: &compareFlags.gatewayB,
		},
		&cli.BoolFlag{
			Name:        "color",
			Usage:       "colorize the diff",
			Destination: &compareFlags.color,
		},
	},
}

func runCompareCmd(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected exactly one PATH argument", 2)
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	gatewayA := firstNonEmpty(compareFlags.gatewayA, rt.cfg.CompareConfig.GatewayA)
	gatewayB := firstNonEmpty(compareFlags.gatewayB, rt.cfg.CompareConfig.GatewayB)

	comparer, err := differ.NewComparerBuilder(rt.fetcher, rt.logger).
		WithGateways(gatewayA, gatewayB).
		WithFetchOptions(rt.cfg.FetchConfig.Options()).
		Build()
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	result, err := comparer.Compare(cctx.Context, cctx.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := cctx.App.Writer
	if result.Identical() {
		fmt.Fprintf(w, "identical: %s and %s\n", result.A.URL, result.B.URL)
		return nil
	}

	fmt.Fprintf(w, "--- %s\n+++ %s\n", result.A.URL, result.B.URL)
	if compareFlags.color {
		fmt.Fprintln(w, result.PrettyText())
	} else {
		fmt.Fprint(w, result.PlainText())
	}
	return cli.Exit(fmt.Sprintf("responses differ: %d line(s) added, %d line(s) deleted",
		result.Stats.LinesAdded, result.Stats.LinesDeleted), 1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
