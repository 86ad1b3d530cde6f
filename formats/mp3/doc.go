// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 duplicates mono streams)
//   - Bit depth: reported as 16, the depth go-mp3 synthesizes
//   - Sample rate: whatever the stream declares
//
// # Decoding
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//	mono := buf.Mono()
//
// MP3 is lossy and there is no encoder; filtered results are written back
// as WAV or AIFF.
package mp3
