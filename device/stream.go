// SPDX-License-Identifier: EPL-2.0

package device

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/voicememo/pcm"
)

// outputPlayer is the part of *oto.Player that playback drives.
type outputPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	BufferedSize() int
	Err() error
	Close() error
}

// streamPlayback plays one memo buffer at a time on players made by
// newPlayer.
type streamPlayback struct {
	newPlayer func(io.Reader) outputPlayer

	mtx    sync.Mutex
	player outputPlayer
	reader *countingReader
}

// Play replaces whatever is playing with buf, from its start.
func (s *streamPlayback) Play(buf *pcm.Buffer) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.stopLocked(); err != nil {
		log.Warnf("Closing previous player: %v", err)
	}

	r := &countingReader{r: bytes.NewReader(buf.Encode())}
	p := s.newPlayer(r)
	p.Play()
	if err := p.Err(); err != nil {
		_ = p.Close()
		return fmt.Errorf("starting playback: %w", err)
	}

	s.player, s.reader = p, r
	log.Debugf("Playing %d frames", buf.FrameLength())

	return nil
}

func (s *streamPlayback) Stop() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.stopLocked()
}

func (s *streamPlayback) stopLocked() error {
	if s.player == nil {
		return nil
	}

	p := s.player
	s.player, s.reader = nil, nil
	p.Pause()

	return p.Close()
}

// Elapsed counts bytes the player has pulled minus what it still holds in
// its buffer.
func (s *streamPlayback) Elapsed() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.player == nil {
		return 0
	}

	return elapsedSeconds(s.reader.Count(), int64(s.player.BufferedSize()))
}

// IsPlaying stays true after the player pauses itself at the end of the
// data, so Elapsed reaches the full duration while still playing. A pause
// with audio left unplayed reports false.
func (s *streamPlayback) IsPlaying() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.player == nil {
		return false
	}
	if s.player.IsPlaying() {
		return true
	}

	return s.reader.Drained() && s.player.BufferedSize() == 0
}
