// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrInvalidChannel      = errors.New("channel index out of range")
	ErrChannelLength       = errors.New("channel length does not match frame count")
	ErrInvalidChannelCount = errors.New("channel count must be positive")
	ErrMisalignedSamples   = errors.New("sample count is not a multiple of channels")
)

func unsupported(format string) error {
	if format == "" {
		return fmt.Errorf("%w: missing file extension", ErrUnsupportedFormat)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
