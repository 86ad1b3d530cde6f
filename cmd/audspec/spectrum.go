// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/plot"
	"github.com/ik5/audspec/spectrum"
)

func spectrumCommand() *cli.Command {
	return &cli.Command{
		Name:      "spectrum",
		Usage:     "Write the magnitude spectrum (or the waveform) of one channel as CSV",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "channel",
				Aliases: []string{"c"},
				Usage:   "Channel to analyse, starting at 0",
			},
			&cli.FloatFlag{
				Name:  "min",
				Usage: "Lowest frequency to print in Hz",
				Value: plot.DefaultMargins[0],
			},
			&cli.FloatFlag{
				Name:  "max",
				Usage: "Highest frequency to print in Hz",
				Value: plot.DefaultMargins[1],
			},
			&cli.BoolFlag{
				Name:  "mono",
				Usage: "Analyse the average of all channels instead of --channel",
			},
			&cli.BoolFlag{
				Name:  "time",
				Usage: "Print amplitude over time instead of the spectrum",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}

			path := cmd.Args().First()

			buf, err := audspec.Load(path)
			if err != nil {
				return err
			}

			if cmd.Bool("mono") {
				buf = buf.Mono()
			}

			samples, err := buf.Channel(cmd.Int("channel"))
			if err != nil {
				return err
			}

			if cmd.Bool("time") {
				return plot.Time(samples, buf.SampleRate, path).WriteCSV(cmd.Root().Writer)
			}

			s, err := spectrum.Transform(samples, buf.SampleRate, buf.Duration())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			slog.Debug("transformed", "path", path, "bins", s.Len(), "resolution", s.Resolution())

			series := plot.Frequency(s, cmd.Float("min"), cmd.Float("max"))
			series.Title = path

			return series.WriteCSV(cmd.Root().Writer)
		},
	}
}
