// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Source is an in-memory audio source holding interleaved samples. It
// satisfies audio.Source without importing it.
type Source struct {
	// Chunk caps the values returned by one ReadSamples call. Zero means no cap.
	Chunk int
	// Err is returned once the samples run out, instead of io.EOF.
	Err error

	rate     int
	channels int
	data     []float32
	pos      int
	closed   bool
}

// NewSource wraps interleaved samples.
func NewSource(rate, channels int, data []float32) *Source {
	return &Source{rate: rate, channels: channels, data: data}
}

// Generate builds a source of frames frames using fn(frame, channel).
func Generate(rate, channels, frames int, fn func(frame, channel int) float32) *Source {
	data := make([]float32, frames*channels)
	for f := range frames {
		for ch := range channels {
			data[f*channels+ch] = fn(f, ch)
		}
	}

	return NewSource(rate, channels, data)
}

// Sine generates a sine of freq Hz on every channel.
func Sine(rate, channels, frames int, freq float64) *Source {
	return Generate(rate, channels, frames, func(f, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(f) / float64(rate)))
	})
}

// Constant generates value on every channel.
func Constant(rate, channels, frames int, value float32) *Source {
	return Generate(rate, channels, frames, func(int, int) float32 { return value })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// ReadSamples copies whole frames and returns io.EOF alongside the last ones.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	end := s.err()
	if s.pos >= len(s.data) {
		return 0, end
	}

	want := len(dst) - len(dst)%s.channels
	if s.Chunk > 0 && want > s.Chunk {
		want = s.Chunk - s.Chunk%s.channels
	}

	n := copy(dst[:want], s.data[s.pos:])
	s.pos += n
	if s.pos >= len(s.data) {
		return n, end
	}

	return n, nil
}

func (s *Source) err() error {
	if s.Err != nil {
		return s.Err
	}

	return io.EOF
}
