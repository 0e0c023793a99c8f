// SPDX-License-Identifier: EPL-2.0

package session

import "time"

// Ticker delivers drive ticks to a session.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

// NewTimeTicker is the default TickerFunc, backed by time.Ticker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// driveLoop calls fn on every tick until cancelled. fn receives the loop so
// the session can tell whether the tick still belongs to the active loop.
type driveLoop struct {
	ticker Ticker
	quit   chan struct{}
	done   chan struct{}
}

func startDriveLoop(newTicker TickerFunc, interval time.Duration, fn func(*driveLoop)) *driveLoop {
	l := &driveLoop{
		ticker: newTicker(interval),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(l.done)
		for {
			select {
			case <-l.quit:
				return
			case <-l.ticker.C():
				select {
				case <-l.quit:
					return
				default:
				}
				fn(l)
			}
		}
	}()

	return l
}

// cancel stops the ticker and signals the goroutine. It does not wait, so
// it is safe to call while holding the session lock.
func (l *driveLoop) cancel() {
	if l == nil {
		return
	}
	l.ticker.Stop()
	close(l.quit)
}

// wait blocks until the goroutine has exited. Must not be called with the
// session lock held.
func (l *driveLoop) wait() {
	if l == nil {
		return
	}
	<-l.done
}
