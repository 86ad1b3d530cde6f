// SPDX-License-Identifier: EPL-2.0

package notch

import (
	"errors"
	"fmt"
)

// ErrDomain classifies every invalid-argument error of this package.
var ErrDomain = errors.New("notch: domain error")

var (
	ErrFrequencyOutOfRange = fmt.Errorf("%w: frequency must be strictly between 0 and the Nyquist frequency", ErrDomain)
	ErrInvalidQuality      = fmt.Errorf("%w: quality factor must be positive", ErrDomain)
	ErrInvalidSampleRate   = fmt.Errorf("%w: sample rate must be positive", ErrDomain)
	ErrSignalTooShort      = fmt.Errorf("%w: signal is too short to filter", ErrDomain)
)
