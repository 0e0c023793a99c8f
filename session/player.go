// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"sync"

	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/playhead"
)

// Player is a playback session: Idle -> Playing -> Idle.
type Player struct {
	playback Playback
	cfg      config

	mtx      sync.Mutex
	state    State
	tracker  playhead.Tracker
	duration float64
	loop     *driveLoop
}

// NewPlayer returns an idle player driving playback.
func NewPlayer(playback Playback, opts ...Option) *Player {
	return &Player{
		playback: playback,
		cfg:      newConfig(opts),
		state:    Idle,
	}
}

// Play starts buf from the beginning. Any playback in progress is stopped
// first. The buffer's duration is computed once here and used for every
// position update until playback ends.
func (p *Player) Play(buf *pcm.Buffer) error {
	p.mtx.Lock()
	loop := p.loop
	err := p.playLocked(buf)
	p.mtx.Unlock()

	loop.wait()

	return err
}

func (p *Player) playLocked(buf *pcm.Buffer) error {
	p.cancelLocked()
	p.state = Idle
	p.tracker.Reset()

	if err := p.playback.Stop(); err != nil {
		log.Warnf("Unable to stop previous playback: %v", err)
	}

	if err := p.playback.Play(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}

	p.duration = buf.Duration()
	p.state = Playing
	p.loop = startDriveLoop(p.cfg.newTicker, p.cfg.tickInterval, p.tickFrom)
	log.Debugf("Playing %.2fs memo", p.duration)

	return nil
}

// Stop halts playback and resets the play head. Stopping an idle player
// does nothing.
func (p *Player) Stop() error {
	p.mtx.Lock()
	loop := p.loop
	err := p.stopLocked()
	p.mtx.Unlock()

	loop.wait()

	return err
}

func (p *Player) stopLocked() error {
	if p.state != Playing {
		return nil
	}

	p.cancelLocked()
	p.state = Idle
	p.tracker.Reset()

	if err := p.playback.Stop(); err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}

	return nil
}

// Close stops any playback in progress.
func (p *Player) Close() error {
	return p.Stop()
}

func (p *Player) cancelLocked() {
	p.loop.cancel()
	p.loop = nil
}

// Tick runs one position update from the device's elapsed time. It does
// nothing unless playing. The returned tick reports completion once.
func (p *Player) Tick() (playhead.Tick, bool) {
	p.mtx.Lock()
	if p.state != Playing {
		p.mtx.Unlock()
		return playhead.Tick{}, false
	}
	loop := p.loop
	tick := p.advanceLocked()
	ended := p.state != Playing
	p.mtx.Unlock()

	if ended {
		loop.wait()
	}
	p.notify(tick)

	return tick, true
}

func (p *Player) tickFrom(l *driveLoop) {
	p.mtx.Lock()
	if p.loop != l {
		p.mtx.Unlock()
		return
	}
	tick := p.advanceLocked()
	p.mtx.Unlock()

	p.notify(tick)
}

// advanceLocked updates the tracker and leaves the Playing state when the
// device has finished or was stopped behind the session's back.
func (p *Player) advanceLocked() playhead.Tick {
	playing := p.playback.IsPlaying()
	tick := p.tracker.Update(playing, p.playback.Elapsed(), p.duration)

	switch {
	case tick.Complete:
		p.cancelLocked()
		p.state = Idle
		if err := p.playback.Stop(); err != nil {
			log.Warnf("Unable to release finished playback: %v", err)
		}
		log.Debugf("Playback complete")
	case !playing:
		p.cancelLocked()
		p.state = Idle
		log.Debugf("Playback stopped by device")
	}

	return tick
}

func (p *Player) notify(tick playhead.Tick) {
	if p.cfg.onPosition != nil {
		p.cfg.onPosition(tick.Position)
	}
	if tick.Complete && p.cfg.onComplete != nil {
		p.cfg.onComplete()
	}
}

// Position returns the last play-head position in [0,1].
func (p *Player) Position() float64 {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.tracker.Position()
}

// Duration returns the duration snapshotted when playback last started.
func (p *Player) Duration() float64 {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.duration
}

// State returns Idle or Playing.
func (p *Player) State() State {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.state
}

// IsPlaying reports whether the player is in the Playing state.
func (p *Player) IsPlaying() bool {
	return p.State() == Playing
}
