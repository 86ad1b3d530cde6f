// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var errArgCount = errors.New("wrong number of arguments")

func main() {
	ctx := context.Background()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "audspec",
		Usage:  "Inspect, normalize and notch-filter audio files",
		Writer: w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every processing step",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			return ctx, nil
		},
		Commands: []*cli.Command{
			infoCommand(),
			normalizeCommand(),
			spectrumCommand(),
			notchCommand(),
		},
	}
}

func requireArgs(cmd *cli.Command, n int) error {
	if cmd.NArg() != n {
		return fmt.Errorf("%w: %s expects %d, got %d", errArgCount, cmd.Name, n, cmd.NArg())
	}

	return nil
}
