// SPDX-License-Identifier: EPL-2.0

package notch

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/ik5/audspec/audio"
)

// DefaultQuality is the quality factor used when the caller has no
// preference. Bandwidth is freq/Q.
const DefaultQuality = 30.0

// order is the number of coefficients of a second-order section.
const order = 3

// padLen is the number of samples mirrored at each end before the
// forward-backward pass.
const padLen = 3 * order

// Coefficients of a second-order IIR section, normalized so A[0] == 1.
//
//	y[n] = B[0]x[n] + B[1]x[n-1] + B[2]x[n-2] - A[1]y[n-1] - A[2]y[n-2]
type Coefficients struct {
	B [order]float64
	A [order]float64
}

// Design returns a second-order notch that rejects freq with a -3 dB
// bandwidth of freq/q at sampleRate.
func Design(freq, q, sampleRate float64) (Coefficients, error) {
	switch {
	case !(sampleRate > 0) || math.IsInf(sampleRate, 0):
		return Coefficients{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	case !(q > 0) || math.IsInf(q, 0):
		return Coefficients{}, fmt.Errorf("%w: %v", ErrInvalidQuality, q)
	case !(freq > 0 && freq < sampleRate/2):
		return Coefficients{}, fmt.Errorf("%w: %v Hz at %v Hz", ErrFrequencyOutOfRange, freq, sampleRate)
	}

	// Normalized to Nyquist.
	w0 := 2 * freq / sampleRate
	bw := w0 / q

	beta := math.Tan(bw * math.Pi / 2)
	gain := 1 / (1 + beta)
	c := math.Cos(math.Pi * w0)

	return Coefficients{
		B: [order]float64{gain, -2 * gain * c, gain},
		A: [order]float64{1, -2 * gain * c, 2*gain - 1},
	}, nil
}

// Response evaluates the transfer function at freq for the given sample rate.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	z := cmplx.Exp(complex(0, -2*math.Pi*freq/sampleRate))
	z2 := z * z

	num := complex(c.B[0], 0) + complex(c.B[1], 0)*z + complex(c.B[2], 0)*z2
	den := complex(c.A[0], 0) + complex(c.A[1], 0)*z + complex(c.A[2], 0)*z2

	return num / den
}

// steadyState returns the filter state for a unit step input that has been
// running forever, so a constant signal passes through without a transient.
func (c Coefficients) steadyState() [order - 1]float64 {
	// (I - companion(A)^T) zi = B[1:] - A[1:]*B[0]
	m := mat.NewDense(order-1, order-1, []float64{
		1 + c.A[1], -1,
		c.A[2], 1,
	})
	rhs := mat.NewVecDense(order-1, []float64{
		c.B[1] - c.A[1]*c.B[0],
		c.B[2] - c.A[2]*c.B[0],
	})

	var zi mat.VecDense
	if err := zi.SolveVec(m, rhs); err != nil {
		// A poorly conditioned system still yields a usable solution.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return [order - 1]float64{}
		}
	}

	return [order - 1]float64{zi.AtVec(0), zi.AtVec(1)}
}

// run filters x in place (transposed direct form II) starting from state z.
func (c Coefficients) run(x []float64, z [order - 1]float64) {
	for i, v := range x {
		y := c.B[0]*v + z[0]
		z[0] = c.B[1]*v - c.A[1]*y + z[1]
		z[1] = c.B[2]*v - c.A[2]*y
		x[i] = y
	}
}

// FiltFilt applies c forward and then backward, so the result has no phase
// shift and the squared magnitude response of c.
//
// Both ends are extended by an odd reflection and the filter starts from its
// steady state, which keeps edge transients short. x must be longer than the
// reflected padding.
func FiltFilt(c Coefficients, x []float64) ([]float64, error) {
	n := len(x)
	if n <= padLen {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrSignalTooShort, n, padLen)
	}

	ext := make([]float64, n+2*padLen)
	for i := range padLen {
		ext[i] = 2*x[0] - x[padLen-i]
		ext[padLen+n+i] = 2*x[n-1] - x[n-2-i]
	}
	copy(ext[padLen:], x)

	zi := c.steadyState()

	c.run(ext, scaled(zi, ext[0]))
	reverse(ext)
	c.run(ext, scaled(zi, ext[0]))
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])

	return out, nil
}

// FilterAudio removes every frequency in frequencies from samples, one notch
// after the other, each applied zero-phase to the previous stage's output.
//
// All frequencies are validated before any filtering starts. An empty list
// returns a copy of samples.
func FilterAudio(samples []float64, frequencies []float64, sampleRate, q float64) ([]float64, error) {
	chain, err := designAll(frequencies, q, sampleRate)
	if err != nil {
		return nil, err
	}

	return apply(chain, samples)
}

// FilterBuffer runs FilterAudio over every channel of buf.
func FilterBuffer(buf *audio.Buffer, frequencies []float64, q float64) (*audio.Buffer, error) {
	chain, err := designAll(frequencies, q, float64(buf.SampleRate))
	if err != nil {
		return nil, err
	}

	out := buf.Clone()
	if len(chain) == 0 {
		return out, nil
	}

	for c := range buf.Channels {
		ch, err := buf.Channel(c)
		if err != nil {
			return nil, err
		}

		filtered, err := apply(chain, ch)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", c, err)
		}

		if err := out.SetChannel(c, filtered); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func designAll(frequencies []float64, q, sampleRate float64) ([]Coefficients, error) {
	chain := make([]Coefficients, 0, len(frequencies))

	for _, f := range frequencies {
		c, err := Design(f, q, sampleRate)
		if err != nil {
			return nil, err
		}

		chain = append(chain, c)
	}

	return chain, nil
}

func apply(chain []Coefficients, samples []float64) ([]float64, error) {
	if len(chain) == 0 {
		out := make([]float64, len(samples))
		copy(out, samples)

		return out, nil
	}

	out := samples
	for _, c := range chain {
		var err error

		out, err = FiltFilt(c, out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func scaled(z [order - 1]float64, k float64) [order - 1]float64 {
	for i := range z {
		z[i] *= k
	}

	return z
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
