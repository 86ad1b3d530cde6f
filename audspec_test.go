// SPDX-License-Identifier: EPL-2.0

package audspec

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/internal/audiotest"
	"github.com/ik5/audspec/normalize"
	"github.com/ik5/audspec/notch"
	"github.com/ik5/audspec/spectrum"
)

func writeTone(t *testing.T, name string, rate, channels, bits int, freqs ...float64) string {
	t.Helper()

	mono := audiotest.Tones(rate, rate, freqs...)
	for i := range mono {
		mono[i] /= float64(len(freqs) + 1)
	}

	chans := make([][]float64, channels)
	for c := range chans {
		chans[c] = mono
	}

	path := filepath.Join(t.TempDir(), name)

	buf := &audio.Buffer{
		SampleRate: rate,
		Channels:   channels,
		BitDepth:   bits,
		Data:       audiotest.Interleave(chans...),
	}

	if err := Save(path, buf); err != nil {
		t.Fatalf("Save(%s) error = %v", name, err)
	}

	return path
}

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	for _, path := range []string{"a.wav", "b.WAV", "c.aif", "d.aiff", "e.mp3", "f.ogg"} {
		if _, err := r.Lookup(path); err != nil {
			t.Errorf("Lookup(%q) error = %v", path, err)
		}
	}

	for _, path := range []string{"a.wav", "c.AIF", "d.aiff"} {
		if _, err := r.LookupEncoder(path); err != nil {
			t.Errorf("LookupEncoder(%q) error = %v", path, err)
		}
	}

	for _, path := range []string{"e.mp3", "f.ogg", "noext"} {
		if _, err := r.LookupEncoder(path); !errors.Is(err, audio.ErrUnsupportedFormat) {
			t.Errorf("LookupEncoder(%q) error = %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"tone.wav", "tone.aiff", "tone.aif"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeTone(t, name, 8000, 2, 16, 440)

			buf, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if buf.SampleRate != 8000 || buf.Channels != 2 || buf.BitDepth != 16 {
				t.Errorf("format = %d Hz %d ch %d bit, want 8000 Hz 2 ch 16 bit",
					buf.SampleRate, buf.Channels, buf.BitDepth)
			}

			if buf.Frames() != 8000 {
				t.Errorf("Frames() = %d, want 8000", buf.Frames())
			}

			want := audiotest.SineAt(10, 8000, 440, 0.5)
			if got := buf.Data[20]; math.Abs(got-want) > 1.0/32768 {
				t.Errorf("frame 10 = %v, want %v", got, want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	if _, err := Load(filepath.Join(dir, "notes.txt")); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Load(.txt) error = %v, want ErrUnsupportedFormat", err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not audio at all, just some bytes here"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(garbage); err == nil {
		t.Error("Load(garbage) error = nil, want a decode error")
	}
}

func TestSave_RemovesFileOnFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")

	err := Save(path, &audio.Buffer{SampleRate: 8000, Channels: 2, Data: []float64{0}})
	if err == nil {
		t.Fatal("Save() error = nil, want an encode error")
	}

	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("Stat() error = %v, want the partial file removed", statErr)
	}

	if err := Save(filepath.Join(t.TempDir(), "x.mp3"), &audio.Buffer{}); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Save(.mp3) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRemoveFrequencies(t *testing.T) {
	t.Parallel()

	in := writeTone(t, "hum.wav", 8000, 1, 16, 500, 1000)
	out := filepath.Join(t.TempDir(), "clean.wav")

	if err := RemoveFrequencies(in, out, []float64{1000}, notch.DefaultQuality); err != nil {
		t.Fatalf("RemoveFrequencies() error = %v", err)
	}

	before, err := Load(in)
	if err != nil {
		t.Fatalf("Load(in) error = %v", err)
	}

	after, err := Load(out)
	if err != nil {
		t.Fatalf("Load(out) error = %v", err)
	}

	if after.Frames() != before.Frames() || after.BitDepth != before.BitDepth {
		t.Fatalf("layout changed: %d frames %d bit", after.Frames(), after.BitDepth)
	}

	sb, err := spectrum.Transform(before.Data, 8000, before.Duration())
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	sa, err := spectrum.Transform(after.Data, 8000, after.Duration())
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if db := 20 * math.Log10(sb.MagnitudeAt(1000)/sa.MagnitudeAt(1000)); db < 20 {
		t.Errorf("1000 Hz attenuated by %.1f dB, want >= 20", db)
	}

	if db := 20 * math.Log10(sb.MagnitudeAt(500)/sa.MagnitudeAt(500)); math.Abs(db) > 0.5 {
		t.Errorf("500 Hz changed by %.2f dB, want untouched", db)
	}

	err = RemoveFrequencies(in, out, []float64{4000}, notch.DefaultQuality)
	if !errors.Is(err, notch.ErrDomain) {
		t.Errorf("RemoveFrequencies(nyquist) error = %v, want ErrDomain", err)
	}
}

func TestNormalizeFile(t *testing.T) {
	t.Parallel()

	in := writeTone(t, "quiet.wav", 8000, 1, 16, 1000)
	out := filepath.Join(t.TempDir(), "loud.aiff")

	if err := NormalizeFile(in, out, 24, false); err != nil {
		t.Fatalf("NormalizeFile() error = %v", err)
	}

	buf, err := Load(out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if buf.BitDepth != 24 {
		t.Errorf("BitDepth = %d, want 24", buf.BitDepth)
	}

	peak := 0.0
	for _, v := range buf.Data {
		peak = max(peak, v)
	}

	if want := normalize.Scale(24) / (1 << 23); peak != want {
		t.Errorf("peak = %v, want %v", peak, want)
	}

	silent := filepath.Join(t.TempDir(), "silent.wav")
	if err := Save(silent, &audio.Buffer{SampleRate: 8000, Channels: 1, BitDepth: 16, Data: make([]float64, 100)}); err != nil {
		t.Fatal(err)
	}

	if err := NormalizeFile(silent, out, 16, false); !errors.Is(err, normalize.ErrZeroReference) {
		t.Errorf("NormalizeFile(silent) error = %v, want ErrZeroReference", err)
	}
}
