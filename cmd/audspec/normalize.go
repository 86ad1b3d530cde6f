// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/normalize"
)

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Scale a file so its peak reaches full scale",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   "Output bit depth (8, 16, 24 or 32)",
				Value:   normalize.DefaultBits,
				Sources: cli.EnvVars("AUDSPEC_BITS"),
			},
			&cli.BoolFlag{
				Name:  "abs",
				Usage: "Use the absolute value of the maximum as the reference",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 2); err != nil {
				return err
			}

			in, out := cmd.Args().Get(0), cmd.Args().Get(1)
			bits := cmd.Int("bits")

			slog.Debug("normalizing", "input", in, "bits", bits, "abs", cmd.Bool("abs"))

			if err := audspec.NormalizeFile(in, out, bits, cmd.Bool("abs")); err != nil {
				return err
			}

			slog.Info("wrote", "path", out)

			return nil
		},
	}
}
