// SPDX-License-Identifier: EPL-2.0

package session

import "github.com/ik5/voicememo/pcm"

// Capture is a microphone that records memo-format audio.
type Capture interface {
	// Start begins capturing.
	Start() error
	// Stop ends capturing and returns the raw samples as produced by
	// pcm.Buffer.Encode.
	Stop() ([]byte, error)
	// Abort ends capturing and drops whatever was recorded.
	Abort() error
	// Decibels is the average power of the most recent audio, in dBFS.
	// Values outside [-160,0] are passed through as reported.
	Decibels() float64
}

// Playback is an output device that plays memo buffers.
type Playback interface {
	// Play schedules buf and starts playing it from the beginning.
	Play(buf *pcm.Buffer) error
	// Stop halts playback. Stopping an idle device is not an error.
	Stop() error
	// Elapsed is the playback time of the current buffer in seconds.
	Elapsed() float64
	// IsPlaying reports whether the device is currently producing audio.
	IsPlaying() bool
}
