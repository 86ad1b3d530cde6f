// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/ik5/audspec/spectrum"
)

// DefaultMargins is the frequency window, in Hz, shown when the caller does
// not pick one.
var DefaultMargins = [2]float64{-4000, 4000}

// Series is one line of a 2-D plot. X and Y always have the same length.
type Series struct {
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
}

// Time lays samples out against their time in seconds.
func Time(samples []float64, sampleRate int, title string) Series {
	s := Series{
		Title:  title,
		XLabel: "Time (s)",
		YLabel: "Amplitude",
		X:      make([]float64, len(samples)),
		Y:      make([]float64, len(samples)),
	}

	copy(s.Y, samples)

	if sampleRate > 0 {
		for i := range s.X {
			s.X[i] = float64(i) / float64(sampleRate)
		}
	}

	return s
}

// Frequency returns |X| for every bin of sp whose frequency lies in
// [lo, hi], ordered by frequency.
func Frequency(sp *spectrum.Spectrum, lo, hi float64) Series {
	type point struct{ f, m float64 }

	mag := sp.Magnitude()
	points := make([]point, 0, len(mag))

	for i, f := range sp.Freqs {
		if f >= lo && f <= hi {
			points = append(points, point{f, mag[i]})
		}
	}

	slices.SortFunc(points, func(a, b point) int { return cmp.Compare(a.f, b.f) })

	s := Series{
		Title:  "Frequency spectrum",
		XLabel: "Frequency (Hz)",
		YLabel: "Magnitude",
		X:      make([]float64, len(points)),
		Y:      make([]float64, len(points)),
	}

	for i, p := range points {
		s.X[i], s.Y[i] = p.f, p.m
	}

	return s
}

// Len returns the number of points.
func (s Series) Len() int { return min(len(s.X), len(s.Y)) }

// WriteCSV writes a header row with the axis labels followed by one row
// per point.
func (s Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{s.XLabel, s.YLabel}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, 2)
	for i := range s.Len() {
		row[0] = strconv.FormatFloat(s.X[i], 'g', -1, 64)
		row[1] = strconv.FormatFloat(s.Y[i], 'g', -1, 64)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
