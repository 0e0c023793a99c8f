//go:build !cgo || noaudio

package device

import (
	"github.com/ik5/voicememo/meter"
	"github.com/ik5/voicememo/pcm"
)

// MicCapture is unavailable in this build.
type MicCapture struct{}

func NewMicCapture(string) (*MicCapture, error) { return nil, ErrNoAudio }

func (*MicCapture) Start() error          { return ErrNoAudio }
func (*MicCapture) Stop() ([]byte, error) { return nil, ErrNoAudio }
func (*MicCapture) Abort() error          { return ErrNoAudio }
func (*MicCapture) Decibels() float64     { return meter.MinDecibels }
func (*MicCapture) Close() error          { return nil }

// SpeakerPlayback is unavailable in this build.
type SpeakerPlayback struct{}

func NewSpeakerPlayback() (*SpeakerPlayback, error) { return nil, ErrNoAudio }

func (*SpeakerPlayback) Play(*pcm.Buffer) error { return ErrNoAudio }
func (*SpeakerPlayback) Stop() error            { return nil }
func (*SpeakerPlayback) Elapsed() float64       { return 0 }
func (*SpeakerPlayback) IsPlaying() bool        { return false }
func (*SpeakerPlayback) Close() error           { return nil }
