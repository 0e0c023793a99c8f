//go:build cgo && !noaudio

// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"

	"github.com/ik5/voicememo/meter"
	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/session"
)

const (
	periodSizeMS = 20

	// chunkBacklog is how many periods may queue up behind a slow disk
	// before captured audio is dropped.
	chunkBacklog = 500
)

var _ session.Capture = (*MicCapture)(nil)

// MicCapture records the default microphone in memo format.
type MicCapture struct {
	dir string
	ctx *malgo.AllocatedContext

	mtx    sync.Mutex
	device *malgo.Device
	rec    *tempRecording
	chunks chan []float32
	done   chan error

	decibels atomic.Uint64
	dropped  atomic.Int64
}

// NewMicCapture prepares a capture device that keeps its temporary files in
// tempDir. Temporary recordings left behind by earlier runs are removed.
func NewMicCapture(tempDir string) (*MicCapture, error) {
	if _, err := RemoveOrphans(tempDir); err != nil {
		log.Warnf("Unable to clean temporary recordings: %v", err)
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	m := &MicCapture{dir: tempDir, ctx: ctx}
	m.decibels.Store(math.Float64bits(meter.MinDecibels))

	return m, nil
}

func (m *MicCapture) Start() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.device != nil {
		return ErrAlreadyCapturing
	}

	rec, err := createTempRecording(m.dir)
	if err != nil {
		return err
	}

	chunks := make(chan []float32, chunkBacklog)
	done := make(chan error, 1)

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.SampleRate = uint32(pcm.SampleRate)
	cfg.PeriodSizeInMilliseconds = periodSizeMS
	cfg.Capture.Format = malgo.FormatF32
	cfg.Capture.Channels = pcm.Channels
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: m.dataProc(chunks),
	}

	device, err := malgo.InitDevice(m.ctx.Context, cfg, callbacks)
	if err != nil {
		_ = rec.discard()
		return fmt.Errorf("initializing capture device: %w", err)
	}

	m.decibels.Store(math.Float64bits(meter.MinDecibels))
	m.dropped.Store(0)
	go drainChunks(rec, chunks, done)

	if err := device.Start(); err != nil {
		device.Uninit()
		close(chunks)
		<-done
		_ = rec.discard()
		return fmt.Errorf("starting capture device: %w", err)
	}

	m.device, m.rec, m.chunks, m.done = device, rec, chunks, done
	log.Debugf("Capturing to %s", rec.path)

	return nil
}

// dataProc decodes each period, updates the level and queues the samples
// for the disk writer without blocking the audio thread.
func (m *MicCapture) dataProc(chunks chan<- []float32) malgo.DataProc {
	return func(_, input []byte, frames uint32) {
		n := min(int(frames), len(input)/pcm.BytesPerSample)
		samples := make([]float32, n)
		for i := range samples {
			samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(input[i*pcm.BytesPerSample:]))
		}

		m.decibels.Store(math.Float64bits(averagePower(samples)))

		select {
		case chunks <- samples:
		default:
			m.dropped.Add(int64(n))
		}
	}
}

func drainChunks(rec *tempRecording, chunks <-chan []float32, done chan<- error) {
	var err error
	for samples := range chunks {
		if err == nil {
			err = rec.write(samples)
		}
	}
	done <- err
}

// halt detaches the running capture. The device is uninitialized outside
// the lock since that waits for the audio thread.
func (m *MicCapture) halt() (*tempRecording, error) {
	m.mtx.Lock()
	device, rec, chunks, done := m.device, m.rec, m.chunks, m.done
	m.device, m.rec, m.chunks, m.done = nil, nil, nil, nil
	m.mtx.Unlock()

	if device == nil {
		return nil, ErrNotCapturing
	}

	device.Uninit()
	close(chunks)
	err := <-done
	m.decibels.Store(math.Float64bits(meter.MinDecibels))

	if n := m.dropped.Load(); n > 0 {
		log.Warnf("Dropped %d captured samples while writing %s", n, rec.path)
	}

	return rec, err
}

// Stop ends the capture and returns the recorded audio as memo bytes. The
// temporary file is removed in every case.
func (m *MicCapture) Stop() ([]byte, error) {
	rec, err := m.halt()
	if rec == nil {
		return nil, err
	}
	if err != nil {
		_ = rec.discard()
		return nil, err
	}

	return rec.finish()
}

// Abort ends the capture and throws the recording away.
func (m *MicCapture) Abort() error {
	rec, err := m.halt()
	if rec == nil {
		return err
	}

	return errors.Join(err, rec.discard())
}

// Decibels is the average power of the latest captured period.
func (m *MicCapture) Decibels() float64 {
	return math.Float64frombits(m.decibels.Load())
}

// Close aborts any running capture and releases the audio context.
func (m *MicCapture) Close() error {
	if err := m.Abort(); err != nil && !errors.Is(err, ErrNotCapturing) {
		log.Warnf("Aborting capture on close: %v", err)
	}

	if err := m.ctx.Uninit(); err != nil {
		return fmt.Errorf("releasing audio context: %w", err)
	}
	m.ctx.Free()

	return nil
}
