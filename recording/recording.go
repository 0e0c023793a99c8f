// SPDX-License-Identifier: EPL-2.0

// Package recording is the stored form of a voice memo: the full audio
// bytes, a cached duration and a pair of trim points that stay
// non-destructive until the memo is finalized.
package recording

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/voicememo/pcm"
)

// ErrAlreadyFinalized is returned when changing a finalized recording.
var ErrAlreadyFinalized = errors.New("recording is already finalized")

// Recording is a memo and its trim state. It is not safe for concurrent use.
type Recording struct {
	ID      uuid.UUID
	Created time.Time

	data         []byte
	fullDuration float64
	trimStart    float64
	trimEnd      float64
	finalized    bool
}

// New wraps raw memo bytes with their already known duration.
func New(data []byte, duration float64) *Recording {
	return &Recording{
		ID:           uuid.New(),
		Created:      time.Now(),
		data:         data,
		fullDuration: duration,
		trimEnd:      1,
	}
}

// FromBuffer creates an untrimmed recording from a freshly captured buffer.
func FromBuffer(buf *pcm.Buffer) *Recording {
	return New(buf.Encode(), buf.Duration())
}

// Restore rebuilds a recording from stored state.
func Restore(id uuid.UUID, created time.Time, data []byte, duration, trimStart, trimEnd float64, finalized bool) *Recording {
	return &Recording{
		ID:           id,
		Created:      created,
		data:         data,
		fullDuration: duration,
		trimStart:    trimStart,
		trimEnd:      trimEnd,
		finalized:    finalized,
	}
}

// Data returns the stored audio bytes, without any pending trim applied.
func (r *Recording) Data() []byte { return r.data }

// FullDuration is the cached duration of the stored bytes.
func (r *Recording) FullDuration() float64 { return r.fullDuration }

// Trim returns the current trim points.
func (r *Recording) Trim() (start, end float64) { return r.trimStart, r.trimEnd }

// IsFinalized reports whether the trim has been baked into the audio.
func (r *Recording) IsFinalized() bool { return r.finalized }

// HasTrim reports whether the trim points differ from the full range.
func (r *Recording) HasTrim() bool {
	return r.trimStart != 0 || r.trimEnd != 1
}

// Duration of the memo as it will play. A pending trim is applied to the
// cached duration; the audio bytes are never decoded for this.
func (r *Recording) Duration() float64 {
	if !r.finalized && r.HasTrim() {
		return (r.trimEnd - r.trimStart) * r.fullDuration
	}

	return r.fullDuration
}

// SetTrim moves the trim points.
func (r *Recording) SetTrim(start, end float64) error {
	if r.finalized {
		return ErrAlreadyFinalized
	}
	if !(start >= 0 && start <= end && end <= 1) {
		return fmt.Errorf("trim %v..%v: %w", start, end, pcm.ErrInvalidTrim)
	}

	r.trimStart, r.trimEnd = start, end

	return nil
}

// Buffer decodes the memo. The pending trim is applied unless withoutTrim
// is set, the recording is finalized or there is no trim.
func (r *Recording) Buffer(withoutTrim bool) (*pcm.Buffer, error) {
	full := pcm.Decode(r.data)
	if r.finalized || withoutTrim || !r.HasTrim() {
		return full, nil
	}

	return full.Trim(r.trimStart, r.trimEnd)
}

// Finalize bakes the pending trim into the audio bytes and resets the trim
// to the full range. It can only happen once.
func (r *Recording) Finalize() error {
	if r.finalized {
		return ErrAlreadyFinalized
	}

	if r.HasTrim() {
		trimmed, err := pcm.Decode(r.data).Trim(r.trimStart, r.trimEnd)
		if err != nil {
			return err
		}
		r.data = trimmed.Encode()
		r.fullDuration = trimmed.Duration()
	}

	r.trimStart, r.trimEnd = 0, 1
	r.finalized = true

	return nil
}

// Replace swaps the audio for a new, untrimmed take.
func (r *Recording) Replace(buf *pcm.Buffer) error {
	if r.finalized {
		return ErrAlreadyFinalized
	}

	r.data = buf.Encode()
	r.fullDuration = buf.Duration()
	r.trimStart, r.trimEnd = 0, 1

	return nil
}
