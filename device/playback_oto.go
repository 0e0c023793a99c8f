//go:build cgo && !noaudio

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/session"
)

var _ session.Playback = (*SpeakerPlayback)(nil)

// SpeakerPlayback plays memo buffers on the default output. oto allows a
// single context per process, so create one SpeakerPlayback and share it.
type SpeakerPlayback struct {
	streamPlayback

	ctx *oto.Context
}

func NewSpeakerPlayback() (*SpeakerPlayback, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(pcm.SampleRate),
		ChannelCount: pcm.Channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	s := &SpeakerPlayback{ctx: ctx}
	s.newPlayer = func(r io.Reader) outputPlayer { return ctx.NewPlayer(r) }

	return s, nil
}

// Close stops playback. The oto context itself lives until the process
// exits.
func (s *SpeakerPlayback) Close() error {
	return s.Stop()
}
