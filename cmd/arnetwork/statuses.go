package main

import (
	"fmt"
	"net/http"

	"github.com/ardriveapp/arnetwork/internal/retryfetch"
	"github.com/urfave/cli/v2"
)

var statusesCmd = &cli.Command{
	Name:  "statuses",
	Usage: "list the HTTP statuses that are retried",
	Action: func(cctx *cli.Context) error {
		for _, code := range retryfetch.RetryableStatusCodes() {
			text := http.StatusText(code)
			if text == "" {
				text = "-"
			}
			fmt.Fprintf(cctx.App.Writer, "%d\t%s\n", code, text)
		}
		return nil
	},
}
