// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audspec/audio"
	"github.com/ik5/audspec/internal/audiotest"
)

// Example_readAll drains a streaming source into a buffer.
func Example_readAll() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0) // 1 second stereo

	buf, err := audio.ReadAll(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", buf.SampleRate)
	fmt.Printf("Channels: %d\n", buf.Channels)
	fmt.Printf("Frames: %d (%.1fs)\n", buf.Frames(), buf.Duration())
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 2
	// Frames: 16000 (1.0s)
}

// Example_mono averages the channels of a stereo buffer.
func Example_mono() {
	buf, err := audio.NewBuffer(8000, 2, 16, []float64{1, 0, 0.5, -0.5, -1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	mono := buf.Mono()

	fmt.Printf("Channels: %d\n", mono.Channels)
	fmt.Println(mono.Data)
	// Output:
	// Channels: 1
	// [0.5 0 -0.5]
}

type nopDecoder struct{}

func (nopDecoder) Decode(io.Reader) (audio.Source, error) {
	return nil, errors.New("not implemented")
}

// Example_registry looks decoders up by file extension.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", nopDecoder{})

	if _, err := registry.Lookup("Take 1.WAV"); err == nil {
		fmt.Println("wav: found")
	}

	_, err := registry.Lookup("notes.flac")
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// wav: found
	// true
}
