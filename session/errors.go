// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	// ErrAlreadyRecording is returned by Recorder.Start while recording.
	ErrAlreadyRecording = errors.New("start called while recording")

	// ErrNotRecording is returned by Recorder.Stop while idle.
	ErrNotRecording = errors.New("stop called while not recording")

	// ErrCaptureFailed wraps a capture device that failed to start.
	ErrCaptureFailed = errors.New("capture device failed")

	// ErrBufferExtraction wraps a failure to obtain the recorded samples.
	ErrBufferExtraction = errors.New("buffer extraction failed")

	// ErrPlaybackFailed wraps a playback device failure.
	ErrPlaybackFailed = errors.New("playback device failed")
)
