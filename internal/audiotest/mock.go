// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"math/rand/v2"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	bitDepth     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float64
	failAfter    int
	err          error
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		bitDepth:     16,
		totalSamples: totalSamples,
		waveform:     waveform,
		failAfter:    -1,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float64 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float64 {
		return SineAt(sample, sampleRate, frequency, 1)
	})
}

// WithError makes ReadSamples fail with err once frames frames were produced.
func (m *MockSource) WithError(frames int, err error) *MockSource {
	m.failAfter = frames
	m.err = err

	return m
}

// WithBitDepth overrides the reported bit depth (16 by default).
func (m *MockSource) WithBitDepth(bits int) *MockSource {
	m.bitDepth = bits
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return m.bitDepth }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, m.err
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.failAfter >= 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// SineAt returns sample n of a sine at frequency Hz with the given amplitude.
func SineAt(n, sampleRate int, frequency, amplitude float64) float64 {
	t := float64(n) / float64(sampleRate)
	return amplitude * math.Sin(2*math.Pi*frequency*t)
}

// Sine returns frames samples of a sine wave.
func Sine(sampleRate, frames int, frequency, amplitude float64) []float64 {
	out := make([]float64, frames)
	for i := range out {
		out[i] = SineAt(i, sampleRate, frequency, amplitude)
	}

	return out
}

// Tones returns the sum of unit sines at each frequency.
func Tones(sampleRate, frames int, frequencies ...float64) []float64 {
	out := make([]float64, frames)
	for _, f := range frequencies {
		for i := range out {
			out[i] += SineAt(i, sampleRate, f, 1)
		}
	}

	return out
}

// Noise returns uniform noise in [-amplitude, amplitude] from a fixed seed,
// so tests stay reproducible.
func Noise(frames int, amplitude float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]float64, frames)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Add returns a + b element-wise. The shorter length wins.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))

	out := make([]float64, n)
	for i := range n {
		out[i] = a[i] + b[i]
	}

	return out
}

// Interleave merges equally long channels into frame-major order.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]float64, frames*len(channels))

	for c, ch := range channels {
		for f := range frames {
			out[f*len(channels)+c] = ch[f]
		}
	}

	return out
}
