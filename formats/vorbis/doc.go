// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0]
//   - Channels: as declared by the stream, interleaved [L0, R0, L1, R1, ...]
//   - Bit depth: 0, since Vorbis decodes to floating point; encoders
//     fall back to 16-bit
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//
// There is no Vorbis encoder.
package vorbis
