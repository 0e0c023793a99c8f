// SPDX-License-Identifier: EPL-2.0

package playhead

import (
	"math"
	"testing"
)

func TestUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		playing bool
		elapsed float64
		total   float64
		want    Tick
	}{
		{"halfway", true, 5, 10, Tick{Position: 0.5}},
		{"start", true, 0, 10, Tick{Position: 0}},
		{"end completes", true, 10, 10, Tick{Complete: true}},
		{"past end completes", true, 12, 10, Tick{Complete: true}},
		{"negative elapsed clamps", true, -1, 10, Tick{Position: 0}},
		{"stopped externally", false, 5, 10, Tick{}},
		{"stopped at end is not completion", false, 10, 10, Tick{}},
		{"zero duration completes", true, 0, 0, Tick{Complete: true}},
		{"negative duration completes", true, 1, -1, Tick{Complete: true}},
		{"NaN elapsed", true, math.NaN(), 10, Tick{Position: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var tr Tracker
			got := tr.Update(tt.playing, tt.elapsed, tt.total)
			if got != tt.want {
				t.Errorf("Update(%v, %v, %v) = %+v, want %+v", tt.playing, tt.elapsed, tt.total, got, tt.want)
			}
			if tr.Position() != got.Position {
				t.Errorf("Position() = %v, want %v", tr.Position(), got.Position)
			}
		})
	}
}

func TestUpdate_StopResetsPosition(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Update(true, 3, 4)
	if tr.Position() != 0.75 {
		t.Fatalf("Position() = %v, want 0.75", tr.Position())
	}

	tr.Update(false, 3.5, 4)
	if tr.Position() != 0 {
		t.Errorf("Position() after external stop = %v, want 0", tr.Position())
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Update(true, 1, 4)
	tr.Reset()

	if tr.Position() != 0 {
		t.Errorf("Position() after Reset() = %v, want 0", tr.Position())
	}
}
