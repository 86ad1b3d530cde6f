// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audspec/internal/audiotest"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	if _, err := NewBuffer(8000, 0, 16, nil); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("NewBuffer(channels=0) error = %v, want ErrInvalidChannelCount", err)
	}

	if _, err := NewBuffer(8000, 2, 16, []float64{1, 2, 3}); !errors.Is(err, ErrMisalignedSamples) {
		t.Errorf("NewBuffer(odd stereo) error = %v, want ErrMisalignedSamples", err)
	}

	buf, err := NewBuffer(8000, 2, 16, make([]float64, 16000))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if buf.Frames() != 8000 {
		t.Errorf("Frames() = %d, want 8000", buf.Frames())
	}

	if buf.Duration() != 1.0 {
		t.Errorf("Duration() = %v, want 1", buf.Duration())
	}
}

func TestBuffer_ChannelRoundTrip(t *testing.T) {
	t.Parallel()

	left := []float64{0.1, 0.2, 0.3}
	right := []float64{-0.1, -0.2, -0.3}

	buf, err := NewBuffer(44100, 2, 16, audiotest.Interleave(left, right))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	got, err := buf.Channel(1)
	if err != nil {
		t.Fatalf("Channel(1) error = %v", err)
	}

	for i := range right {
		if got[i] != right[i] {
			t.Errorf("Channel(1)[%d] = %v, want %v", i, got[i], right[i])
		}
	}

	if err := buf.SetChannel(0, []float64{1, 1, 1}); err != nil {
		t.Fatalf("SetChannel() error = %v", err)
	}

	want := []float64{1, -0.1, 1, -0.2, 1, -0.3}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %v, want %v", i, buf.Data[i], want[i])
		}
	}

	if _, err := buf.Channel(2); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("Channel(2) error = %v, want ErrInvalidChannel", err)
	}

	if err := buf.SetChannel(0, []float64{1}); !errors.Is(err, ErrChannelLength) {
		t.Errorf("SetChannel(short) error = %v, want ErrChannelLength", err)
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	buf := &Buffer{SampleRate: 8000, Channels: 1, BitDepth: 16, Data: []float64{0.5, -0.5}}
	clone := buf.Clone()
	clone.Data[0] = 0

	if buf.Data[0] != 0.5 {
		t.Error("Clone() shares the sample slice with the original")
	}
}

func TestBuffer_Mono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		data     []float64
		want     []float64
	}{
		{"mono passthrough", 1, []float64{0.1, 0.2}, []float64{0.1, 0.2}},
		{"stereo average", 2, []float64{1, 0, 0.5, -0.5}, []float64{0.5, 0}},
		{"three channels", 3, []float64{0.3, 0.6, 0.9}, []float64{0.6}},
		{"opposite phase cancels", 2, []float64{1, -1, -1, 1}, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &Buffer{SampleRate: 8000, Channels: tt.channels, Data: tt.data}
			mono := buf.Mono()

			if mono.Channels != 1 {
				t.Fatalf("Channels = %d, want 1", mono.Channels)
			}

			if len(mono.Data) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(mono.Data), len(tt.want))
			}

			for i := range tt.want {
				if math.Abs(mono.Data[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Data[%d] = %v, want %v", i, mono.Data[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 2, 10000, 440)

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", buf.Frames())
	}

	if buf.SampleRate != 8000 || buf.Channels != 2 || buf.BitDepth != 16 {
		t.Errorf("format = %d Hz %d ch %d bit, want 8000 Hz 2 ch 16 bit",
			buf.SampleRate, buf.Channels, buf.BitDepth)
	}

	want := audiotest.SineAt(123, 8000, 440, 1)
	if got := buf.Data[123*2+1]; math.Abs(got-want) > 1e-12 {
		t.Errorf("frame 123 = %v, want %v", got, want)
	}
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSineSource(8000, 1, 10000, 440).WithError(5000, boom)

	if _, err := ReadAll(src); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(audiotest.NewSilentSource(8000, 1, 0))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", buf.Frames())
	}
}
