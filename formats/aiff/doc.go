// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding.
//
// This package uses github.com/go-audio/aiff for container handling.
//
// # Supported Formats
//
//   - Signed PCM at 8, 16, 24 or 32 bits
//   - Any channel count and sample rate
//   - AIFF-C compressed payloads are not supported
//
// # Decoding
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//
// Samples come back as float64 in [-1.0, 1.0] and the source reports the
// stored bit depth.
//
// # Encoding
//
//	file, _ := os.Create("out.aiff")
//	err := aiff.Encoder{}.Encode(file, buf)
//
// AIFF stores the sample rate as an 80-bit extended float and samples
// big-endian; go-audio handles both.
//
// # File Extensions
//
// The root package registers both .aif and .aiff.
package aiff
