// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const readChunk = 4096

// Buffer is an in-memory block of interleaved samples in [-1,1].
// Frame f of channel c lives at Data[f*Channels+c].
type Buffer struct {
	SampleRate int
	Channels   int
	// BitDepth is the PCM depth the samples came from or should be written at.
	// 0 means unknown; encoders fall back to 16.
	BitDepth int
	Data     []float64
}

// NewBuffer wraps interleaved data. It returns an error when data does not
// hold a whole number of frames.
func NewBuffer(sampleRate, channels, bitDepth int, data []float64) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedSamples, len(data), channels)
	}

	return &Buffer{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
		Data:       data,
	}, nil
}

// Frames returns the number of frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// Duration in seconds. Always derived from the frame count.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}

	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := *b
	out.Data = make([]float64, len(b.Data))
	copy(out.Data, b.Data)

	return &out
}

// Channel returns a copy of channel c.
func (b *Buffer) Channel(c int) ([]float64, error) {
	if c < 0 || c >= b.Channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, c, b.Channels)
	}

	frames := b.Frames()
	out := make([]float64, frames)

	if b.Channels == 1 {
		copy(out, b.Data[:frames])
		return out, nil
	}

	for f := range frames {
		out[f] = b.Data[f*b.Channels+c]
	}

	return out, nil
}

// SetChannel overwrites channel c with x.
func (b *Buffer) SetChannel(c int, x []float64) error {
	if c < 0 || c >= b.Channels {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChannel, c, b.Channels)
	}

	frames := b.Frames()
	if len(x) != frames {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelLength, len(x), frames)
	}

	if b.Channels == 1 {
		copy(b.Data, x)
		return nil
	}

	for f, v := range x {
		b.Data[f*b.Channels+c] = v
	}

	return nil
}

// Mono returns a single-channel buffer holding the average of all channels.
func (b *Buffer) Mono() *Buffer {
	if b.Channels == 1 {
		return b.Clone()
	}

	frames := b.Frames()
	out := &Buffer{
		SampleRate: b.SampleRate,
		Channels:   1,
		BitDepth:   b.BitDepth,
		Data:       make([]float64, frames),
	}

	channels := b.Channels
	invChannels := 1.0 / float64(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			out.Data[f] = (b.Data[idx] + b.Data[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := 0.0
			base := f * channels
			for c := range channels {
				sum += b.Data[base+c]
			}
			out.Data[f] = sum * invChannels
		}
	}

	return out
}

// ReadAll drains src into a Buffer. Trailing values that do not complete a
// frame are dropped.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}

	chunk := make([]float64, readChunk*channels)
	data := make([]float64, 0, len(chunk))

	for {
		n, err := src.ReadSamples(chunk)
		if n > 0 {
			data = append(data, chunk[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			// Sources may report a dry read without EOF; treat it as the end.
			break
		}
	}

	data = data[:len(data)-len(data)%channels]

	return &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   channels,
		BitDepth:   src.BitDepth(),
		Data:       data,
	}, nil
}
