// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"io"
	"sync/atomic"
)

// countingReader counts the bytes read through it and remembers when the
// source ran dry. Reads may happen on another goroutine than Count.
type countingReader struct {
	r       io.Reader
	n       atomic.Int64
	drained atomic.Bool
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	if errors.Is(err, io.EOF) {
		c.drained.Store(true)
	}

	return n, err
}

func (c *countingReader) Count() int64 { return c.n.Load() }

// Drained reports whether the source has returned io.EOF.
func (c *countingReader) Drained() bool { return c.drained.Load() }
