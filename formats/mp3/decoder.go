// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/utils"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo PCM.
	outputChannels = 2
	outputBitDepth = 16
	bytesPerSample = outputBitDepth / 8
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// pending holds a trailing odd byte between reads
	pending []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) BitDepth() int   { return outputBitDepth }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(dst)%outputChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	bytesNeeded := len(dst)*bytesPerSample - len(s.pending)
	if cap(s.buf) < len(s.pending)+bytesNeeded {
		s.buf = make([]byte, len(s.pending)+bytesNeeded)
	}
	s.buf = s.buf[:len(s.pending)+bytesNeeded]
	copy(s.buf, s.pending)

	n, err := s.dec.Read(s.buf[len(s.pending):])
	n += len(s.pending)
	s.pending = s.pending[:0]

	samples := n / bytesPerSample
	if rem := n % bytesPerSample; rem > 0 {
		s.pending = append(s.pending, s.buf[n-rem:n]...)
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[bytesPerSample*i:]))
		dst[i] = utils.IntToFloat(int(v), outputBitDepth)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
