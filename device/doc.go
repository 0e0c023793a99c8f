// SPDX-License-Identifier: EPL-2.0

// Package device connects the recording and playback sessions to real audio
// hardware.
//
// MicCapture records the default microphone through miniaudio (malgo) into a
// temporary 32 bit WAV file named recording-<uuid>.wav and hands the samples
// back in memo format when stopped. SpeakerPlayback plays memo buffers on the
// default output through oto.
//
// Both need cgo. Builds without cgo, or with the noaudio tag, get stubs that
// fail with ErrNoAudio.
package device
