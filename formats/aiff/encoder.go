// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/utils"
)

// Encoder writes signed PCM AIFF files at the buffer's bit depth
// (16-bit when the buffer does not carry one).
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if buf == nil || buf.Channels <= 0 || buf.SampleRate <= 0 {
		return ErrInvalidBuffer
	}

	if len(buf.Data)%buf.Channels != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBuffer, audio.ErrMisalignedSamples)
	}

	bitDepth := buf.BitDepth
	if bitDepth == 0 {
		bitDepth = utils.DefaultBitDepth
	}

	if !utils.ValidBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	data := make([]int, len(buf.Data))
	for i, x := range buf.Data {
		data[i] = utils.FloatToInt(x, bitDepth)
	}

	enc := aiff.NewEncoder(w, buf.SampleRate, bitDepth, buf.Channels)

	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}

	return nil
}
