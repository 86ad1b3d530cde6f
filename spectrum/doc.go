// SPDX-License-Identifier: EPL-2.0

// Package spectrum computes the discrete Fourier transform of sample buffers.
//
// Transform returns every complex bin together with its frequency. Bins
// follow the usual FFT layout: DC and positive frequencies first, then the
// negative frequencies from -rate/2 upward.
//
//	s, err := spectrum.Transform(samples, 8000, 0)
//	freq, mag := s.Peak()
//
// The transform length always comes from the buffer. A non-zero duration is
// only checked against it, rounded to the nearest frame. Any positive length is accepted; the FFT is
// gonum's dsp/fourier implementation.
package spectrum
