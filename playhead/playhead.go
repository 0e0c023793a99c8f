// SPDX-License-Identifier: EPL-2.0

// Package playhead converts elapsed playback time into a normalized
// position for a play-head indicator and detects the end of playback.
package playhead

import "math"

// Tick is the outcome of one position update.
type Tick struct {
	// Position of the play head in [0,1].
	Position float64
	// Complete reports that playback reached the end. The position is 0 and
	// the caller must stop driving the tracker.
	Complete bool
}

// Tracker holds the last computed position. The zero value is ready to use.
type Tracker struct {
	position float64
}

// Update computes the position for elapsed seconds out of total seconds.
//
// When the device is no longer playing the position drops to 0 without
// looking at elapsed. A position that reaches 1 reports completion and
// also resets to 0. A non-positive total is treated as already complete.
func (t *Tracker) Update(playing bool, elapsed, total float64) Tick {
	if !playing {
		t.position = 0
		return Tick{}
	}

	if total <= 0 || math.IsNaN(total) {
		t.position = 0
		return Tick{Complete: true}
	}

	position := elapsed / total
	if math.IsNaN(position) {
		position = 0
	}
	position = min(max(position, 0), 1)

	if position >= 1 {
		t.position = 0
		return Tick{Complete: true}
	}

	t.position = position
	return Tick{Position: position}
}

// Position returns the last computed position.
func (t *Tracker) Position() float64 { return t.position }

// Reset moves the play head back to the start.
func (t *Tracker) Reset() { t.position = 0 }
