// SPDX-License-Identifier: EPL-2.0

// Package voicememo records, plays, trims and draws voice memos.
//
// Every memo is mono float32 audio at 44.1 kHz (see package pcm). The
// packages split along the life of a memo:
//
//   - pcm: the buffer type, byte codec, trimming and waveform extraction
//   - meter: the peak-hold level meter fed from capture decibels
//   - playhead: playback progress as a ratio of the duration
//   - session: the Recorder and Player state machines and their drive loops
//   - recording: a captured memo with its trim range and finalized flag
//   - store: LevelDB persistence for recordings
//   - device: microphone capture and speaker playback
//   - audio and formats: decoding foreign files for import
//
// This package ties the import side together. Conform turns any decoded
// source into a memo buffer and Import does the same for a file on disk:
//
//	buf, err := voicememo.Import(voicememo.DefaultRegistry(), "interview.mp3")
package voicememo
