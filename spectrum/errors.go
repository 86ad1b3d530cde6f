// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"fmt"
)

// ErrDomain classifies every invalid-argument error of this package.
var ErrDomain = errors.New("spectrum: domain error")

var (
	ErrEmptyBuffer       = fmt.Errorf("%w: empty sample buffer", ErrDomain)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrDomain)
	// ErrLengthMismatch is returned when the declared duration does not
	// describe the buffer that was handed in.
	ErrLengthMismatch = fmt.Errorf("%w: duration does not match buffer length", ErrDomain)
)
