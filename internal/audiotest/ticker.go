// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"
	"time"
)

// ManualTicker is a ticker that only fires when told to.
type ManualTicker struct {
	ch chan time.Time

	mu      sync.Mutex
	stopped bool
}

// NewManualTicker returns a ticker with an unbuffered channel, so Fire
// returns only once the tick has been received.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

// Stopped reports whether Stop was called.
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stopped
}

// Fire delivers one tick. It reports false when the ticker is stopped or
// nobody received the tick within a second.
func (m *ManualTicker) Fire() bool {
	if m.Stopped() {
		return false
	}

	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(time.Second):
		return false
	}
}

// TickerSource hands out ManualTickers and remembers them.
type TickerSource struct {
	mu      sync.Mutex
	tickers []*ManualTicker
}

// New creates a ticker; the interval is ignored.
func (s *TickerSource) New(time.Duration) *ManualTicker {
	t := NewManualTicker()

	s.mu.Lock()
	s.tickers = append(s.tickers, t)
	s.mu.Unlock()

	return t
}

// Last returns the most recently created ticker, or nil.
func (s *TickerSource) Last() *ManualTicker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tickers) == 0 {
		return nil
	}

	return s.tickers[len(s.tickers)-1]
}

// Count returns how many tickers were created.
func (s *TickerSource) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tickers)
}
