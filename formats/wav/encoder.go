// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/utils"
)

// Encoder writes integer PCM WAV files at the buffer's bit depth
// (16-bit when the buffer does not carry one).
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	intBuf, err := toIntBuffer(buf)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, buf.SampleRate, intBuf.SourceBitDepth, buf.Channels, pcmFormat)

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// toIntBuffer converts [-1,1] samples to go-audio integer PCM.
func toIntBuffer(buf *audio.Buffer) (*goaudio.IntBuffer, error) {
	if buf == nil || buf.Channels <= 0 || buf.SampleRate <= 0 {
		return nil, ErrInvalidBuffer
	}

	if len(buf.Data)%buf.Channels != 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBuffer, audio.ErrMisalignedSamples)
	}

	bitDepth := buf.BitDepth
	if bitDepth == 0 {
		bitDepth = utils.DefaultBitDepth
	}

	if !utils.ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	data := make([]int, len(buf.Data))
	for i, x := range buf.Data {
		v := utils.FloatToInt(x, bitDepth)
		if bitDepth == 8 {
			v += 128
		}
		data[i] = v
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}
