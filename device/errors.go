// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrNoAudio is returned by every device in builds without cgo or
	// with the noaudio tag.
	ErrNoAudio = errors.New("audio support not compiled in")
	// ErrAlreadyCapturing is returned by Start while a capture is running.
	ErrAlreadyCapturing = errors.New("capture already running")
	// ErrNotCapturing is returned by Stop and Abort when no capture is
	// running.
	ErrNotCapturing = errors.New("capture not running")

	// ErrTempFileMissing is returned when the temporary recording file
	// vanished before it could be read back.
	ErrTempFileMissing = errors.New("temporary recording file missing")
	// ErrTempFileCorrupt is returned when the temporary recording file is
	// not a readable WAV file.
	ErrTempFileCorrupt = errors.New("temporary recording file corrupt")
)
