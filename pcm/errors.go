// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrInvalidTrim is returned when trim ratios are outside 0 <= start <= end <= 1.
	ErrInvalidTrim = errors.New("trim ratios must satisfy 0 <= start <= end <= 1")

	// ErrInvalidResolution is returned when a waveform is requested with a
	// resolution below one.
	ErrInvalidResolution = errors.New("waveform resolution must be positive")

	// ErrFormatMismatch is returned when foreign audio does not match the memo format.
	ErrFormatMismatch = errors.New("audio does not match the memo format")
)
