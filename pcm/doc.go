// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the in-memory representation of a voice memo.
//
// Every memo in the system uses one fixed audio layout (see Format):
// single channel, 32-bit IEEE float samples, 44100 Hz, non-interleaved.
// Nothing in this package converts between rates or channel counts; audio
// that arrives in another layout must be conformed at the import boundary
// before it becomes a Buffer.
//
// # Buffers
//
// A Buffer owns its samples. Once constructed it is never mutated, so it
// can be handed to a playback device or another goroutine without locking:
//
//	buf := pcm.Decode(raw)          // raw bytes from capture or storage
//	trimmed, err := buf.Trim(0.1, 0.9)
//	if err != nil {
//	    // ratios outside 0 <= start <= end <= 1
//	}
//	raw = trimmed.Encode()          // frameLength*4 bytes
//
// Trim always copies the selected range into new storage.
//
// # Byte Layout
//
// Raw memo bytes are exactly FrameLength()*4 bytes of little-endian float32.
// Decode truncates a misaligned tail instead of failing, so any byte slice
// handed over by a persistence layer can be decoded. Encode(Decode(b)) is
// lossless for every b whose length is a multiple of four.
//
// # Waveforms
//
// Waveform produces normalized amplitudes for display. Two behaviors are
// kept on purpose because display code depends on them:
//   - a buffer shorter than the requested resolution yields one value per
//     frame, not resolution values
//   - a silent buffer yields an empty slice, not a slice of zeros
package pcm
