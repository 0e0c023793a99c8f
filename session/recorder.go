// SPDX-License-Identifier: EPL-2.0

package session

import (
	"fmt"
	"sync"

	"github.com/ik5/voicememo/meter"
	"github.com/ik5/voicememo/pcm"
)

// Recorder is a recording session: Idle -> Recording -> Idle.
type Recorder struct {
	capture Capture
	cfg     config

	mtx   sync.Mutex
	state State
	meter *meter.LevelMeter
	loop  *driveLoop
}

// NewRecorder returns an idle recorder driving capture.
func NewRecorder(capture Capture, opts ...Option) *Recorder {
	cfg := newConfig(opts)

	return &Recorder{
		capture: capture,
		cfg:     cfg,
		state:   Idle,
		meter:   meter.New(cfg.holdDuration, cfg.tickInterval),
	}
}

// Start begins recording. The caller must already hold microphone
// permission. The meter is reset and metering runs until the recording
// stops.
func (r *Recorder) Start() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state == Recording {
		return ErrAlreadyRecording
	}

	if err := r.capture.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}

	r.meter.Reset()
	r.state = Recording
	r.loop = startDriveLoop(r.cfg.newTicker, r.cfg.tickInterval, r.tickFrom)
	log.Debugf("Recording started")

	return nil
}

// Stop ends the recording and returns the captured audio. The session is
// idle afterwards even when the capture device fails; the failure is
// returned wrapped with ErrBufferExtraction.
func (r *Recorder) Stop() (*pcm.Buffer, error) {
	r.mtx.Lock()
	loop := r.loop
	buf, err := r.stopLocked()
	r.mtx.Unlock()

	loop.wait()

	return buf, err
}

func (r *Recorder) stopLocked() (*pcm.Buffer, error) {
	if r.state != Recording {
		return nil, ErrNotRecording
	}

	r.cancelLocked()
	r.state = Idle

	data, err := r.capture.Stop()
	if err != nil {
		log.Errorf("Unable to extract recorded audio: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrBufferExtraction, err)
	}

	buf := pcm.Decode(data)
	log.Debugf("Recording stopped with %d frames (%.2fs)", buf.FrameLength(), buf.Duration())

	return buf, nil
}

// Discard stops recording without producing a buffer. It is safe to call
// in any state and is the path for teardown (backgrounding, closing the
// widget).
func (r *Recorder) Discard() {
	r.mtx.Lock()
	loop := r.loop
	r.cancelLocked()
	if r.state == Recording {
		r.state = Idle
		if err := r.capture.Abort(); err != nil {
			log.Warnf("Unable to abort capture: %v", err)
		}
		log.Debugf("Recording discarded")
	}
	r.mtx.Unlock()

	loop.wait()
}

// Close discards any recording in progress.
func (r *Recorder) Close() error {
	r.Discard()
	return nil
}

// cancelLocked detaches the drive loop. Must be the first step of every
// exit from Recording.
func (r *Recorder) cancelLocked() {
	r.loop.cancel()
	r.loop = nil
}

// Tick runs one metering step with the device's current decibel reading.
// It does nothing unless recording.
func (r *Recorder) Tick() (meter.Reading, bool) {
	r.mtx.Lock()
	if r.state != Recording {
		r.mtx.Unlock()
		return meter.Reading{}, false
	}
	reading := r.meter.Tick(r.capture.Decibels())
	r.mtx.Unlock()

	if r.cfg.onLevel != nil {
		r.cfg.onLevel(reading)
	}

	return reading, true
}

func (r *Recorder) tickFrom(l *driveLoop) {
	r.mtx.Lock()
	if r.loop != l {
		r.mtx.Unlock()
		return
	}
	reading := r.meter.Tick(r.capture.Decibels())
	r.mtx.Unlock()

	if r.cfg.onLevel != nil {
		r.cfg.onLevel(reading)
	}
}

// Reading returns the latest meter reading.
func (r *Recorder) Reading() meter.Reading {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.meter.Reading()
}

// State returns Idle or Recording.
func (r *Recorder) State() State {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.state
}

// IsRecording reports whether the recorder is in the Recording state.
func (r *Recorder) IsRecording() bool {
	return r.State() == Recording
}
