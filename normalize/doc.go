// SPDX-License-Identifier: EPL-2.0

// Package normalize rescales sample buffers into a signed fixed-point range.
//
// The largest sample (or its absolute value) becomes 2^(bits-1)-1 and every
// other sample is scaled by the same factor and rounded:
//
//	pcm, err := normalize.Normalize16(samples, false)
//
// Any integer or floating point slice is accepted. The result always fits a
// signed bits-wide integer: values that land outside
// [-2^(bits-1), 2^(bits-1)-1] are saturated.
//
// A buffer whose maximum is zero has no scaling reference and yields
// ErrZeroReference instead of a buffer of NaN.
package normalize
