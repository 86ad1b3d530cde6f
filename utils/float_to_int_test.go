// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		bits  int
		want  int
	}{
		{"zero", 0.0, 16, 0},
		{"max positive 16", 1.0, 16, math.MaxInt16},
		{"max negative 16", -1.0, 16, math.MinInt16},
		{"half positive", 0.5, 16, 16384},
		{"half negative", -0.5, 16, -16384},
		{"small positive", 0.001, 16, 33},
		{"clamp over max", 1.5, 16, math.MaxInt16},
		{"clamp way under min", -100.0, 16, math.MinInt16},
		{"max positive 8", 1.0, 8, math.MaxInt8},
		{"max negative 8", -1.0, 8, math.MinInt8},
		{"max positive 24", 1.0, 24, 1<<23 - 1},
		{"max negative 24", -1.0, 24, -(1 << 23)},
		{"max positive 32", 1.0, 32, math.MaxInt32},
		{"max negative 32", -1.0, 32, math.MinInt32},
		{"nan is silence", math.NaN(), 16, 0},
		{"positive infinity clamps", math.Inf(1), 16, math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToInt(tt.input, tt.bits)
			if got != tt.want {
				t.Errorf("FloatToInt(%v, %d) = %v, want %v", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

// TestIntToFloatRoundTrip verifies that every 16-bit value survives a round trip
func TestIntToFloatRoundTrip(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		if got := FloatToInt(IntToFloat(v, 16), 16); got != v {
			t.Fatalf("round trip of %d = %d", v, got)
		}
	}

	for _, v := range []int{-(1 << 23), -1, 0, 1, 1<<23 - 1} {
		if got := FloatToInt(IntToFloat(v, 24), 24); got != v {
			t.Errorf("24-bit round trip of %d = %d", v, got)
		}
	}
}

// TestFloatToIntMonotonic tests that function is monotonic
func TestFloatToIntMonotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToInt(-1.0, 16)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := FloatToInt(f, 16)
		if curr < prev {
			t.Errorf("FloatToInt not monotonic: f=%v gives %v, but previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := map[int]float64{2: 2, 8: 128, 16: 32768, 24: 8388608, 32: 2147483648}
	for bits, want := range tests {
		if got := FullScale(bits); got != want {
			t.Errorf("FullScale(%d) = %v, want %v", bits, got, want)
		}
	}
}

func TestValidBitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24, 32} {
		if !ValidBitDepth(bits) {
			t.Errorf("ValidBitDepth(%d) = false, want true", bits)
		}
	}

	for _, bits := range []int{0, 4, 12, 20, 64} {
		if ValidBitDepth(bits) {
			t.Errorf("ValidBitDepth(%d) = true, want false", bits)
		}
	}
}

// BenchmarkFloatToInt simulates converting 1 second of mono audio at 8kHz
func BenchmarkFloatToInt(b *testing.B) {
	floatSamples := make([]float64, 8000)
	intSamples := make([]int, 8000)

	for i := range floatSamples {
		floatSamples[i] = math.Sin(float64(i) * 0.1)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			intSamples[j] = FloatToInt(floatSamples[j], 16)
		}
	}
}

// TestFloatToInt_ZeroAllocs verifies no heap allocations
func TestFloatToInt_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = FloatToInt(0.5, 24)
	})

	if allocs > 0 {
		t.Errorf("FloatToInt allocated %v times, want 0", allocs)
	}
}
