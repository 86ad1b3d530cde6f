// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio/wav library for RIFF chunk handling, so
// files with extra chunks (LIST, fact, odd-sized padding) are read as long
// as they carry PCM or 32-bit float samples. The fmt chunk is read first with
// github.com/go-audio/riff to resolve WAVE_FORMAT_EXTENSIBLE sub-formats.
//
// # Supported Formats
//
//   - Integer PCM (format tag 1) at 8, 16, 24 or 32 bits
//   - IEEE float (format tag 3) at 32 bits
//   - WAVE_FORMAT_EXTENSIBLE (0xFFFE) with a PCM or float sub-format
//   - Any channel count
//   - Any sample rate
//
// 8-bit WAV is unsigned on disk; the decoder and encoder handle the offset.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadAll(source)
//
// Samples are float64 in [-1.0, 1.0]; the source reports the bit depth it
// was stored at so a later Encode can write the same depth back. Readers
// that cannot seek are buffered in memory first.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encoder{}.Encode(file, buf)
//
// The encoder writes buf.BitDepth (16 when unset) and clamps samples that
// fall outside [-1, 1].
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: A-law, µ-law or other compressed payloads
//   - ErrUnsupportedBitDepth: a PCM depth other than 8/16/24/32, or 64-bit float
//   - ErrUnsupportedWavChunks: no data chunk could be found
//   - ErrInvalidBuffer: the buffer handed to Encode is malformed
package wav
