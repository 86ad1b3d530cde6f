// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ik5/audspec/audio"
)

// Spectrum is the full complex DFT of a real buffer together with the
// frequency of every bin.
type Spectrum struct {
	Bins       []complex128
	Freqs      []float64
	SampleRate int
}

// Transform computes the forward DFT of samples.
//
// The transform length is len(samples). duration is optional metadata: zero
// skips the check, otherwise sampleRate*duration rounded to the nearest frame
// must equal len(samples). A negative or non-finite duration, or one that
// describes another length, returns ErrLengthMismatch.
func Transform(samples []float64, sampleRate int, duration float64) (*Spectrum, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptyBuffer
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if err := checkDuration(n, sampleRate, duration); err != nil {
		return nil, err
	}

	seq := make([]complex128, n)
	for i, v := range samples {
		seq[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)

	return &Spectrum{
		Bins:       fft.Coefficients(nil, seq),
		Freqs:      FrequencyAxis(n, sampleRate),
		SampleRate: sampleRate,
	}, nil
}

// checkDuration reports whether duration seconds at sampleRate describe n
// frames. Rounding keeps the comparison exact for durations computed as
// n/sampleRate at any length a float64 can hold.
func checkDuration(n, sampleRate int, duration float64) error {
	switch {
	case duration == 0:
		return nil
	case duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0):
		return fmt.Errorf("%w: invalid duration %gs", ErrLengthMismatch, duration)
	}

	declared := math.Round(float64(sampleRate) * duration)
	if declared != float64(n) {
		return fmt.Errorf("%w: %d Hz x %gs = %.0f frames, buffer has %d",
			ErrLengthMismatch, sampleRate, duration, declared, n)
	}

	return nil
}

// TransformBuffer transforms every channel of buf separately.
func TransformBuffer(buf *audio.Buffer) ([]*Spectrum, error) {
	out := make([]*Spectrum, 0, buf.Channels)

	for c := range buf.Channels {
		ch, err := buf.Channel(c)
		if err != nil {
			return nil, err
		}

		s, err := Transform(ch, buf.SampleRate, 0)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}

		out = append(out, s)
	}

	return out, nil
}

// FrequencyAxis returns the centre frequency of each of n DFT bins: the
// non-negative frequencies first, then the negative ones in increasing
// order.
func FrequencyAxis(n, sampleRate int) []float64 {
	if n <= 0 {
		return nil
	}

	axis := make([]float64, n)
	step := float64(sampleRate) / float64(n)
	half := (n-1)/2 + 1

	for i := range half {
		axis[i] = float64(i) * step
	}

	for i := half; i < n; i++ {
		axis[i] = float64(i-n) * step
	}

	return axis
}

// Inverse reconstructs the real signal from s.
func Inverse(s *Spectrum) []float64 {
	n := len(s.Bins)
	if n == 0 {
		return nil
	}

	seq := fourier.NewCmplxFFT(n).Sequence(nil, s.Bins)

	out := make([]float64, n)
	for i, v := range seq {
		out[i] = real(v) / float64(n)
	}

	return out
}

// Len returns the number of bins.
func (s *Spectrum) Len() int { return len(s.Bins) }

// Resolution returns the spacing between bins in Hz.
func (s *Spectrum) Resolution() float64 {
	if len(s.Bins) == 0 {
		return 0
	}

	return float64(s.SampleRate) / float64(len(s.Bins))
}

// Magnitude returns |X[k]| for every bin.
func (s *Spectrum) Magnitude() []float64 {
	out := make([]float64, len(s.Bins))
	for i, c := range s.Bins {
		out[i] = cmplx.Abs(c)
	}

	return out
}

// MagnitudeAt returns the magnitude of the bin closest to freq.
func (s *Spectrum) MagnitudeAt(freq float64) float64 {
	k := s.nearest(freq)
	if k < 0 {
		return 0
	}

	return cmplx.Abs(s.Bins[k])
}

// Peak returns the non-negative frequency with the largest magnitude.
func (s *Spectrum) Peak() (freq, magnitude float64) {
	for i, f := range s.Freqs {
		if f < 0 {
			break
		}

		if m := cmplx.Abs(s.Bins[i]); m > magnitude {
			freq, magnitude = f, m
		}
	}

	return freq, magnitude
}

func (s *Spectrum) nearest(freq float64) int {
	best := -1
	dist := math.Inf(1)

	for i, f := range s.Freqs {
		if d := math.Abs(f - freq); d < dist {
			best, dist = i, d
		}
	}

	return best
}
