// SPDX-License-Identifier: EPL-2.0

package normalize

import "errors"

var (
	ErrEmptyBuffer = errors.New("normalize: empty sample buffer")
	ErrInvalidBits = errors.New("normalize: bit depth must be between 2 and 32")
	// ErrZeroReference is returned when the scaling reference (the buffer
	// maximum or its absolute value) is zero or not finite, which would
	// otherwise turn every output sample into NaN or Inf.
	ErrZeroReference = errors.New("normalize: scaling reference is zero or not finite")
)
