// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/notch"
)

var errNoFrequencies = errors.New("at least one --freq is required")

func notchCommand() *cli.Command {
	return &cli.Command{
		Name:      "notch",
		Usage:     "Remove narrow frequency bands from a file",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.FloatSliceFlag{
				Name:    "freq",
				Aliases: []string{"f"},
				Usage:   "Frequency to remove in Hz, repeat for more",
			},
			&cli.FloatFlag{
				Name:    "q",
				Usage:   "Quality factor, bandwidth is freq/q",
				Value:   notch.DefaultQuality,
				Sources: cli.EnvVars("AUDSPEC_Q"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 2); err != nil {
				return err
			}

			freqs := cmd.FloatSlice("freq")
			if len(freqs) == 0 {
				return errNoFrequencies
			}

			in, out := cmd.Args().Get(0), cmd.Args().Get(1)

			slog.Debug("filtering", "input", in, "frequencies", freqs, "q", cmd.Float("q"))

			if err := audspec.RemoveFrequencies(in, out, freqs, cmd.Float("q")); err != nil {
				return err
			}

			slog.Info("wrote", "path", out)

			return nil
		},
	}
}
