// SPDX-License-Identifier: EPL-2.0

// Package session coordinates recording and playback of voice memos.
//
// A Recorder drives a Capture device and a meter.LevelMeter; a Player
// drives a Playback device and a playhead.Tracker. Both are constructed by
// the application with their devices passed in, so there is no process-wide
// recorder or player and tests can run sessions side by side.
//
// # Ticks
//
// While active, each session runs one drive loop at the tick interval
// (1/60s by default). Tick can also be called directly by a caller that
// owns its own scheduler. Every stop path, including Discard and Close,
// detaches the loop before it does anything else; a tick that is already
// in flight sees the detached loop and returns without touching state.
//
// # Errors
//
// Misuse of a Recorder is an error (ErrAlreadyRecording, ErrNotRecording).
// Stopping an idle Player is not. Device failures are wrapped together
// with ErrCaptureFailed, ErrBufferExtraction or ErrPlaybackFailed, so
// errors.Is matches both the class and the device error.
package session
