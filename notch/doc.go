// SPDX-License-Identifier: EPL-2.0

// Package notch removes narrow frequency bands from sample buffers.
//
// Design builds a second-order IIR notch for one frequency. FiltFilt runs it
// forward and then backward over a whole buffer, so the result has no phase
// shift. FilterAudio chains one notch per frequency, each stage filtering the
// previous stage's output:
//
//	clean, err := notch.FilterAudio(samples, []float64{50, 100, 150}, 44100, notch.DefaultQuality)
//
// Frequencies must lie strictly between 0 and half the sample rate. Invalid
// arguments return an error wrapping ErrDomain before any sample is touched.
//
// Filtering needs the entire buffer in memory and is not suited to streaming.
package notch
