// SPDX-License-Identifier: EPL-2.0

package normalize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/utils"
)

const (
	DefaultBits = 16
	MinBits     = 2
	MaxBits     = 32
)

// Sample is any numeric type a decoder may hand out.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// Scale returns 2^(bits-1)-1, the largest positive value at the bit depth.
func Scale(bits int) float64 {
	return math.Ldexp(1, bits-1) - 1
}

// Normalize rescales samples so that the reference value maps to
// 2^(bits-1)-1 and rounds every sample to the nearest integer.
//
// The reference is the buffer maximum, or its absolute value when
// useAbsoluteMax is set. With useAbsoluteMax false a buffer whose maximum is
// negative is divided by a negative reference, so every output sample flips
// sign. Results that would not fit a signed bits-wide integer are saturated
// to [-2^(bits-1), 2^(bits-1)-1].
func Normalize[T Sample](samples []T, bits int, useAbsoluteMax bool) ([]int32, error) {
	scaled, err := scale(samples, bits, useAbsoluteMax)
	if err != nil {
		return nil, err
	}

	out := make([]int32, len(scaled))
	for i, v := range scaled {
		out[i] = int32(v)
	}

	return out, nil
}

// Normalize16 is Normalize at the default 16-bit depth.
func Normalize16[T Sample](samples []T, useAbsoluteMax bool) ([]int16, error) {
	scaled, err := scale(samples, DefaultBits, useAbsoluteMax)
	if err != nil {
		return nil, err
	}

	out := make([]int16, len(scaled))
	for i, v := range scaled {
		out[i] = int16(v)
	}

	return out, nil
}

// NormalizeBuffer normalizes every channel of buf against the maximum over
// the whole buffer and returns a new buffer at the given bit depth, ready to
// be encoded. Channel layout and length are preserved.
func NormalizeBuffer(buf *audio.Buffer, bits int, useAbsoluteMax bool) (*audio.Buffer, error) {
	ints, err := Normalize(buf.Data, bits, useAbsoluteMax)
	if err != nil {
		return nil, err
	}

	out := &audio.Buffer{
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels,
		BitDepth:   bits,
		Data:       make([]float64, len(ints)),
	}

	for i, v := range ints {
		out.Data[i] = utils.IntToFloat(int(v), bits)
	}

	return out, nil
}

func scale[T Sample](samples []T, bits int, useAbsoluteMax bool) ([]float64, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, bits)
	}

	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}

	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}

	base := floats.Max(x)
	if useAbsoluteMax {
		base = math.Abs(base)
	}

	if base == 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return nil, fmt.Errorf("%w: %v", ErrZeroReference, base)
	}

	hi := Scale(bits)
	lo := -hi - 1

	for i, v := range x {
		v = math.Round((v / base) * hi)
		switch {
		case math.IsNaN(v):
			v = 0
		case v > hi:
			v = hi
		case v < lo:
			v = lo
		}
		x[i] = v
	}

	return x, nil
}
