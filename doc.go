// SPDX-License-Identifier: EPL-2.0

// Package audspec loads, analyses, filters and saves waveform audio.
//
// The heavy lifting lives in the subpackages:
//   - normalize rescales samples into a signed fixed-point range
//   - spectrum computes the DFT and its frequency axis
//   - notch removes narrow frequency bands with zero-phase notch filters
//   - plot turns buffers and spectra into plot-ready series
//
// This package ties them to files:
//
//	buf, err := audspec.Load("hum.wav")
//	clean, err := notch.FilterBuffer(buf, []float64{50, 100}, notch.DefaultQuality)
//	err = audspec.Save("clean.wav", clean)
//
// or in one call:
//
//	err := audspec.RemoveFrequencies("hum.wav", "clean.wav", []float64{50, 100}, notch.DefaultQuality)
//
// # Supported Formats
//
// The format is picked from the file extension:
//   - WAV (integer PCM 8/16/24/32-bit), read and write, via formats/wav
//   - AIFF (.aif, .aiff), read and write, via formats/aiff
//   - MP3, read only, via formats/mp3
//   - Ogg Vorbis (.ogg), read only, via formats/vorbis
//
// Build a registry with NewRegistry and use LoadWith/SaveWith to add or
// replace formats.
package audspec
