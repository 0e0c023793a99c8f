// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/voicememo/pcm"
)

// FakeCapture is an in-memory capture device. Its fields may be set before
// use; the counters and decibel value are guarded for use from drive loops.
type FakeCapture struct {
	// Data is returned by Stop.
	Data []byte
	// StartErr and StopErr are returned by Start and Stop when set.
	StartErr error
	StopErr  error

	mu       sync.Mutex
	decibels float64
	starts   int
	stops    int
	aborts   int
	active   bool
}

// NewFakeCapture returns a capture device that yields samples on Stop.
func NewFakeCapture(samples []float32) *FakeCapture {
	return &FakeCapture{
		Data:     pcm.New(samples).Encode(),
		decibels: -160,
	}
}

func (c *FakeCapture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.starts++
	if c.StartErr != nil {
		return c.StartErr
	}
	c.active = true

	return nil
}

func (c *FakeCapture) Stop() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stops++
	c.active = false
	if c.StopErr != nil {
		return nil, c.StopErr
	}

	return c.Data, nil
}

func (c *FakeCapture) Abort() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.aborts++
	c.active = false

	return nil
}

func (c *FakeCapture) Decibels() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.decibels
}

// SetDecibels sets the value reported by Decibels.
func (c *FakeCapture) SetDecibels(db float64) {
	c.mu.Lock()
	c.decibels = db
	c.mu.Unlock()
}

// Counts returns how many times Start, Stop and Abort were called.
func (c *FakeCapture) Counts() (starts, stops, aborts int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.starts, c.stops, c.aborts
}

// Active reports whether the device is between Start and Stop/Abort.
func (c *FakeCapture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// FakePlayback is an in-memory playback device whose clock is set by the test.
type FakePlayback struct {
	// PlayErr is returned by Play when set.
	PlayErr error

	mu      sync.Mutex
	played  []*pcm.Buffer
	stops   int
	playing bool
	elapsed float64
}

func (p *FakePlayback) Play(buf *pcm.Buffer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.PlayErr != nil {
		return p.PlayErr
	}
	p.played = append(p.played, buf)
	p.playing = true
	p.elapsed = 0

	return nil
}

func (p *FakePlayback) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stops++
	p.playing = false

	return nil
}

func (p *FakePlayback) Elapsed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.elapsed
}

func (p *FakePlayback) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing
}

// SetElapsed moves the device clock.
func (p *FakePlayback) SetElapsed(seconds float64) {
	p.mu.Lock()
	p.elapsed = seconds
	p.mu.Unlock()
}

// SetPlaying overrides the playing flag, e.g. to simulate an external stop.
func (p *FakePlayback) SetPlaying(playing bool) {
	p.mu.Lock()
	p.playing = playing
	p.mu.Unlock()
}

// Played returns every buffer handed to Play.
func (p *FakePlayback) Played() []*pcm.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*pcm.Buffer(nil), p.played...)
}

// Stops returns how many times Stop was called.
func (p *FakePlayback) Stops() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stops
}
