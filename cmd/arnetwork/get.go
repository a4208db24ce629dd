package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/ardriveapp/arnetwork/internal/retryfetch"
	"github.com/urfave/cli/v2"
)

var getFlags struct {
	retries    int
	retryDelay int
	quiet      bool
	mode       string
	acceptJSON bool
}

var getCmd = &cli.Command{
	Name:      "get",
	Usage:     "GET a URL, retrying transient statuses",
	ArgsUsage: "URL",
	Action:    runGetCmd,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:        "retries",
			Usage:       "additional attempts for transient statuses",
			Destination: &getFlags.retries,
		},
		&cli.IntFlag{
			Name:        "retry-delay",
			Usage:       "base backoff delay in milliseconds",
			Destination: &getFlags.retryDelay,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "do not log retries",
			Destination: &getFlags.quiet,
		},
		&cli.StringFlag{
			Name:        "mode",
			Usage:       "response mode: json, bytes or text",
			Destination: &getFlags.mode,
		},
		&cli.BoolFlag{
			Name:        "accept-json",
			Usage:       "send Accept: application/json",
			Destination: &getFlags.acceptJSON,
		},
	},
}

func runGetCmd(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected exactly one URL argument", 2)
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	opts, err := applyGetFlags(cctx, rt.cfg.FetchConfig.Options())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	outcome := rt.fetcher.FetchWithRetry(cctx.Context, cctx.Args().First(), opts)
	if err := outcome.Err(); err != nil {
		rt.logger.Error().Err(err).Str("kind", outcome.Kind.String()).Msg("Fetch failed")
		return cli.Exit(err.Error(), 1)
	}

	rt.logger.Debug().
		Int("status_code", outcome.Success.StatusCode).
		Int("attempt", outcome.Success.AttemptNumber).
		Msg("Fetch succeeded")

	return writeBody(cctx.App.Writer, outcome.Success.Body)
}

// applyGetFlags overrides configured options with flags set on the command line.
func applyGetFlags(cctx *cli.Context, opts retryfetch.Options) (retryfetch.Options, error) {
	if cctx.IsSet("retries") {
		opts.Retries = getFlags.retries
	}
	if cctx.IsSet("retry-delay") {
		opts.RetryDelay = time.Duration(getFlags.retryDelay) * time.Millisecond
	}
	if cctx.IsSet("quiet") {
		opts.SuppressLogs = getFlags.quiet
	}
	if cctx.IsSet("accept-json") {
		opts.AcceptJSON = getFlags.acceptJSON
	}
	if cctx.IsSet("mode") {
		mode, err := httpclient.ParseResponseMode(getFlags.mode)
		if err != nil {
			return opts, err
		}
		opts.ResponseMode = mode
	}
	return opts, nil
}

// writeBody prints a decoded body: raw bytes and text as-is, JSON indented.
func writeBody(w io.Writer, body any) error {
	switch v := body.(type) {
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		_, err := io.WriteString(w, v)
		return err
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode body: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}
