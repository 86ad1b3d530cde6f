// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample model and the decoder plumbing
// shared by the format packages.
//
// # Source Interface
//
// Every decoder yields a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved samples scaled to [-1.0, 1.0] and
// returns io.EOF once the stream is exhausted.
//
// # Buffers
//
// ReadAll drains a Source into a Buffer, the value every transform in this
// module consumes and produces:
//
//	buf, err := audio.ReadAll(src)
//	left, _ := buf.Channel(0)
//	fmt.Println(buf.Frames(), buf.Duration())
//
// Buffers are interleaved frame-major: frame f of channel c is
// Data[f*Channels+c]. Duration is always derived from the frame count and
// the sample rate, never stored.
//
// # Format Registry
//
// The registry maps a format key (the file extension) to a decoder and,
// where the format can be written, an encoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	decoder, err := registry.Lookup("take.wav")
//
// Lookups are case-insensitive and safe for concurrent use.
package audio
