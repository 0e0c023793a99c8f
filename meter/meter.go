// SPDX-License-Identifier: EPL-2.0

// Package meter turns periodic decibel readings from a capture device into
// display levels with a held, decaying peak.
//
// A LevelMeter is a plain state machine. It owns no timer: whoever drives
// the capture device calls Tick once per metering interval and reads the
// returned Reading.
package meter

import (
	"math"
	"time"
)

const (
	// MinDecibels is the floor applied to every reading before conversion.
	MinDecibels = -160.0

	// DefaultHoldDuration is how long a new peak stays up before it resets.
	DefaultHoldDuration = time.Second

	// DefaultTickInterval is the metering rate, 60 Hz.
	DefaultTickInterval = time.Second / 60
)

// Reading is a snapshot of the meter.
type Reading struct {
	// Level is the latest reading on a linear [0,1] scale.
	Level float64
	// Peak is the held peak on a linear [0,1] scale.
	Peak float64
	// PeakHold is the fraction of the hold duration still remaining, in [0,1].
	PeakHold float64
}

// LevelMeter tracks the current level and a held peak. It is not safe for
// concurrent use; the session that owns it serializes access.
type LevelMeter struct {
	holdTicks int

	level    float64
	peak     float64
	holdLeft int // ticks
}

// New returns a meter with the given hold duration and tick interval.
// Non-positive values fall back to the defaults. The hold is counted in
// whole ticks: hold/interval rounded to the nearest tick, at least one.
func New(hold, interval time.Duration) *LevelMeter {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &LevelMeter{
		holdTicks: max(1, int(math.Round(float64(hold)/float64(interval)))),
	}
}

// HoldTicks is the number of ticks a new peak is held before it resets.
func (m *LevelMeter) HoldTicks() int { return m.holdTicks }

// Reset zeroes level, peak and hold. Called when recording starts.
func (m *LevelMeter) Reset() {
	m.level = 0
	m.peak = 0
	m.holdLeft = 0
}

// Tick folds one decibel reading into the meter and returns the new state.
//
// A reading above the held peak re-arms the hold. Otherwise the hold counts
// down by one tick interval, and once it has run out the peak drops to 0.
// Level always follows the latest reading.
func (m *LevelMeter) Tick(decibels float64) Reading {
	linear := DecibelsToLinear(decibels)

	m.level = linear
	switch {
	case linear > m.peak:
		m.peak = linear
		m.holdLeft = m.holdTicks
	case m.holdLeft > 0:
		m.holdLeft--
	default:
		m.peak = 0
	}

	return m.Reading()
}

// Reading returns the current state without changing it.
func (m *LevelMeter) Reading() Reading {
	r := Reading{Level: m.level, Peak: m.peak}
	if m.holdTicks > 0 {
		r.PeakHold = float64(m.holdLeft) / float64(m.holdTicks)
	}

	return r
}

// DecibelsToLinear converts a dBFS value to a linear amplitude. Readings
// below MinDecibels are clamped to it; there is no upper clamp, so positive
// readings map above 1. NaN is treated as silence.
func DecibelsToLinear(decibels float64) float64 {
	if math.IsNaN(decibels) {
		decibels = MinDecibels
	}

	return math.Pow(10, math.Max(decibels, MinDecibels)/20)
}
