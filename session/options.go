// SPDX-License-Identifier: EPL-2.0

package session

import (
	"time"

	"github.com/ik5/voicememo/meter"
)

// DefaultTickInterval is the metering and play-head rate.
const DefaultTickInterval = meter.DefaultTickInterval

type config struct {
	tickInterval time.Duration
	holdDuration time.Duration
	newTicker    TickerFunc

	onLevel    func(meter.Reading)
	onPosition func(float64)
	onComplete func()
}

func newConfig(opts []Option) config {
	cfg := config{
		tickInterval: DefaultTickInterval,
		holdDuration: meter.DefaultHoldDuration,
		newTicker:    NewTimeTicker,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a Recorder or Player.
type Option func(*config)

// WithTickInterval sets the drive loop rate. Non-positive values are ignored.
func WithTickInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// WithHoldDuration sets how long the recorder's peak level is held.
func WithHoldDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.holdDuration = d
		}
	}
}

// WithTickerFunc replaces the ticker used by the drive loop.
func WithTickerFunc(fn TickerFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.newTicker = fn
		}
	}
}

// WithLevelListener registers fn to receive every meter reading while
// recording. fn runs on the drive loop and must not block or call back into
// the session.
func WithLevelListener(fn func(meter.Reading)) Option {
	return func(c *config) { c.onLevel = fn }
}

// WithPositionListener registers fn to receive every play-head position.
// The same restrictions as WithLevelListener apply.
func WithPositionListener(fn func(float64)) Option {
	return func(c *config) { c.onPosition = fn }
}

// WithCompletionListener registers fn to be called once each time playback
// reaches the end of its buffer.
func WithCompletionListener(fn func()) Option {
	return func(c *config) { c.onComplete = fn }
}
