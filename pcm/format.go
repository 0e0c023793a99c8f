// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	goaudio "github.com/go-audio/audio"
)

// The memo sample format. Changing any of these values is a breaking change
// that needs a review of the whole system: stored recordings, capture and
// playback devices and the waveform code all assume exactly this layout.
const (
	// SampleRate of every memo buffer in Hz.
	SampleRate = 44100.0
	// Channels is always one. Frame and sample are the same thing here.
	Channels = 1
	// BytesPerSample is the size of one float32 sample.
	BytesPerSample = 4
	// BitDepth of a sample.
	BitDepth = 32
)

// Format describes the memo layout in go-audio terms.
var Format = goaudio.Format{
	NumChannels: Channels,
	SampleRate:  int(SampleRate),
}

// IsMemoFormat reports whether f matches the memo layout.
func IsMemoFormat(f *goaudio.Format) bool {
	return f != nil && f.NumChannels == Channels && f.SampleRate == int(SampleRate)
}
