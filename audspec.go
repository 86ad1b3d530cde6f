// SPDX-License-Identifier: EPL-2.0

package audspec

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/formats/aiff"
	"github.com/ik5/audspec/formats/mp3"
	"github.com/ik5/audspec/formats/vorbis"
	"github.com/ik5/audspec/formats/wav"
	"github.com/ik5/audspec/normalize"
	"github.com/ik5/audspec/notch"
)

// DefaultRegistry knows every format this module ships. WAV and AIFF can be
// read and written; MP3 and Ogg Vorbis are read only.
var DefaultRegistry = NewRegistry()

// NewRegistry returns a registry with the built-in formats registered.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	r.RegisterEncoder("wav", wav.Encoder{})
	r.RegisterEncoder("aif", aiff.Encoder{})
	r.RegisterEncoder("aiff", aiff.Encoder{})

	return r
}

// Load decodes the whole file at path. The format is picked from the file
// extension.
func Load(path string) (*audio.Buffer, error) {
	return LoadWith(DefaultRegistry, path)
}

// LoadWith is Load with an explicit registry.
func LoadWith(r *audio.Registry, path string) (*audio.Buffer, error) {
	dec, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return buf, nil
}

// Save encodes buf to path, creating or truncating the file. A file left
// half written by a failed encode is removed.
func Save(path string, buf *audio.Buffer) error {
	return SaveWith(DefaultRegistry, path, buf)
}

// SaveWith is Save with an explicit registry.
func SaveWith(r *audio.Registry, path string, buf *audio.Buffer) (err error) {
	enc, err := r.LookupEncoder(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := enc.Encode(f, buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}

// RemoveFrequencies loads in, notches out every frequency on every channel
// and writes the result to out at the input's bit depth.
func RemoveFrequencies(in, out string, frequencies []float64, q float64) error {
	buf, err := Load(in)
	if err != nil {
		return err
	}

	filtered, err := notch.FilterBuffer(buf, frequencies, q)
	if err != nil {
		return fmt.Errorf("filter %s: %w", in, err)
	}

	return Save(out, filtered)
}

// NormalizeFile loads in, scales it so its peak reaches full scale at bits
// and writes the result to out.
func NormalizeFile(in, out string, bits int, useAbsoluteMax bool) error {
	buf, err := Load(in)
	if err != nil {
		return err
	}

	normalized, err := normalize.NormalizeBuffer(buf, bits, useAbsoluteMax)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", in, err)
	}

	return Save(out, normalized)
}
