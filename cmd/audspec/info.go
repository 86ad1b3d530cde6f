// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ik5/audspec"
	"github.com/ik5/audspec/spectrum"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print format details and the dominant frequency of every channel",
		ArgsUsage: "<file>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if err := requireArgs(cmd, 1); err != nil {
				return err
			}

			path := cmd.Args().First()

			buf, err := audspec.Load(path)
			if err != nil {
				return err
			}

			slog.Debug("loaded", "path", path, "frames", buf.Frames())

			w := cmd.Root().Writer
			fmt.Fprintf(w, "file: %s\n", path)
			fmt.Fprintf(w, "sample rate: %d Hz\n", buf.SampleRate)
			fmt.Fprintf(w, "channels: %d\n", buf.Channels)
			fmt.Fprintf(w, "bit depth: %d\n", buf.BitDepth)
			fmt.Fprintf(w, "frames: %d\n", buf.Frames())
			fmt.Fprintf(w, "duration: %.3fs\n", buf.Duration())

			if buf.Frames() == 0 {
				return nil
			}

			specs, err := spectrum.TransformBuffer(buf)
			if err != nil {
				return err
			}

			for c, s := range specs {
				freq, _ := s.Peak()
				fmt.Fprintf(w, "channel %d peak: %.1f Hz\n", c, freq)
			}

			return nil
		},
	}
}
