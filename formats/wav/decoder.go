// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/utils"
)

// WAVE format tags.
const (
	pcmFormat        = 0x0001
	floatFormat      = 0x0003
	extensibleFormat = 0xFFFE
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
)

// fmtHeader is the fixed part of every fmt chunk.
type fmtHeader struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// fmtExtension follows fmtHeader when AudioFormat is extensibleFormat. The
// first two bytes of the sub-format GUID carry the actual format tag.
type fmtExtension struct {
	Size          uint16
	ValidBits     uint16
	ChannelMask   uint32
	SubFormat     uint16
	SubFormatTail [14]byte
}

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	// float marks 32-bit IEEE float payloads
	float  bool
	intBuf *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.float {
			dst[i] = float64(math.Float32frombits(uint32(v)))
			continue
		}

		// 8-bit WAV is unsigned with silence at 128.
		if s.bitDepth == 8 {
			v -= 128
		}
		dst[i] = utils.IntToFloat(v, s.bitDepth)
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	tag, err := formatTag(rs)
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	bitDepth := int(dec.BitDepth)

	switch tag {
	case pcmFormat:
		if !utils.ValidBitDepth(bitDepth) {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
		}
	case floatFormat:
		if bitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bitDepth)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %#04x", ErrOnlyPCMSupported, tag)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   bitDepth,
		float:      tag == floatFormat,
	}, nil
}

// formatTag reads the fmt chunk of rs and returns its format tag, resolved
// through the sub-format of WAVE_FORMAT_EXTENSIBLE files. It leaves rs at an
// arbitrary offset.
func formatTag(rs io.ReadSeeker) (uint16, error) {
	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if p.ID != riffID || p.Format != waveID {
		return 0, ErrNotWavFile
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: no fmt chunk: %w", ErrNotWavFile, err)
		}

		if ch.ID != fmtID {
			// chunks are word aligned
			skip := int64(ch.Size + ch.Size%2)
			if _, err := io.CopyN(io.Discard, rs, skip); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
			}
			continue
		}

		var hdr fmtHeader
		if err := ch.ReadLE(&hdr); err != nil {
			return 0, fmt.Errorf("%w: short fmt chunk: %w", ErrNotWavFile, err)
		}

		if hdr.AudioFormat != extensibleFormat {
			return hdr.AudioFormat, nil
		}

		var ext fmtExtension
		if err := ch.ReadLE(&ext); err != nil {
			return 0, fmt.Errorf("%w: short extensible fmt chunk: %w", ErrUnsupportedWavChunks, err)
		}

		return ext.SubFormat, nil
	}
}
