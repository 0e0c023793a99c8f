// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Buffer is an immutable, single channel float32 sample buffer at SampleRate.
// The zero value is a valid empty buffer.
type Buffer struct {
	samples []float32
}

// New returns a buffer holding a copy of samples.
func New(samples []float32) *Buffer {
	owned := make([]float32, len(samples))
	copy(owned, samples)

	return &Buffer{samples: owned}
}

// Take returns a buffer that owns samples without copying them. The caller
// must not touch samples afterwards.
func Take(samples []float32) *Buffer {
	return &Buffer{samples: samples}
}

// Decode interprets data as little-endian float32 samples.
// A trailing partial sample (len(data) % 4 bytes) is dropped.
func Decode(data []byte) *Buffer {
	frames := len(data) / BytesPerSample
	samples := make([]float32, frames)

	for i := range frames {
		bits := binary.LittleEndian.Uint32(data[i*BytesPerSample:])
		samples[i] = math.Float32frombits(bits)
	}

	return &Buffer{samples: samples}
}

// Encode serializes the buffer to FrameLength()*4 bytes.
func (b *Buffer) Encode() []byte {
	return b.AppendEncoded(make([]byte, 0, len(b.samples)*BytesPerSample))
}

// AppendEncoded appends the encoded samples to dst and returns the extended slice.
func (b *Buffer) AppendEncoded(dst []byte) []byte {
	for _, s := range b.samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s))
	}

	return dst
}

// FrameLength is the number of samples in the buffer.
func (b *Buffer) FrameLength() int { return len(b.samples) }

// SampleRate of the buffer in Hz. Always the memo rate.
func (b *Buffer) SampleRate() float64 { return SampleRate }

// At returns the sample at frame i. It panics if i is out of range.
func (b *Buffer) At(i int) float32 { return b.samples[i] }

// CopySamples copies samples starting at frame offset into dst and returns
// the number of samples copied.
func (b *Buffer) CopySamples(dst []float32, offset int) int {
	if offset < 0 || offset >= len(b.samples) {
		return 0
	}

	return copy(dst, b.samples[offset:])
}

// Duration in seconds. Zero for an empty buffer.
func (b *Buffer) Duration() float64 {
	return float64(len(b.samples)) / SampleRate
}

// Trim copies the frames between the start and end ratios into a new buffer.
//
// Both ratios are positions within the buffer in [0,1] and start must not
// exceed end. The selected range is [floor(start*L), floor(end*L)) where L
// is FrameLength(). Equal ratios produce an empty buffer.
func (b *Buffer) Trim(start, end float64) (*Buffer, error) {
	if !validRatio(start) || !validRatio(end) || start > end {
		return nil, fmt.Errorf("trim %v..%v: %w", start, end, ErrInvalidTrim)
	}

	length := float64(len(b.samples))
	startFrame := int(start * length)
	endFrame := int(end * length)

	segment := make([]float32, endFrame-startFrame)
	copy(segment, b.samples[startFrame:endFrame])

	return &Buffer{samples: segment}, nil
}

func validRatio(r float64) bool {
	return r >= 0 && r <= 1
}

// AsFloat32Buffer returns a go-audio copy of the buffer.
func (b *Buffer) AsFloat32Buffer() *goaudio.Float32Buffer {
	format := Format
	data := make([]float32, len(b.samples))
	copy(data, b.samples)

	return &goaudio.Float32Buffer{
		Format:         &format,
		Data:           data,
		SourceBitDepth: BitDepth,
	}
}

// FromFloat32Buffer copies a go-audio buffer into a memo buffer. The
// buffer must already be mono at the memo sample rate.
func FromFloat32Buffer(fb *goaudio.Float32Buffer) (*Buffer, error) {
	if fb == nil {
		return &Buffer{}, nil
	}
	if !IsMemoFormat(fb.Format) {
		return nil, ErrFormatMismatch
	}

	return New(fb.Data), nil
}
