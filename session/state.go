// SPDX-License-Identifier: EPL-2.0

package session

// State of a session.
type State int

const (
	// Idle is the resting state of both sessions.
	Idle State = iota
	// Recording means a Recorder is capturing and metering.
	Recording
	// Playing means a Player is driving a device and its play head.
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}
