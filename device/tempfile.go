// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"

	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/utils"
)

const (
	tempPrefix = "recording-"
	tempSuffix = ".wav"

	wavFormatPCM = 1
)

// tempRecording is a capture in progress, streamed to disk as 32 bit
// integer WAV.
type tempRecording struct {
	path   string
	f      *os.File
	enc    *wav.Encoder
	buf    *goaudio.IntBuffer
	frames int
}

func createTempRecording(dir string) (*tempRecording, error) {
	path := filepath.Join(dir, tempPrefix+uuid.NewString()+tempSuffix)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating temporary recording: %w", err)
	}

	format := pcm.Format
	return &tempRecording{
		path: path,
		f:    f,
		enc:  wav.NewEncoder(f, int(pcm.SampleRate), pcm.BitDepth, pcm.Channels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &format,
			SourceBitDepth: pcm.BitDepth,
		},
	}, nil
}

func (t *tempRecording) write(samples []float32) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(t.buf.Data) < len(samples) {
		t.buf.Data = make([]int, len(samples))
	}
	t.buf.Data = t.buf.Data[:len(samples)]
	for i, s := range samples {
		t.buf.Data[i] = int(utils.Float32ToInt32(s))
	}

	if err := t.enc.Write(t.buf); err != nil {
		return fmt.Errorf("writing temporary recording: %w", err)
	}
	t.frames += len(samples)

	return nil
}

// finish closes the file, reads it back as memo bytes and removes it.
func (t *tempRecording) finish() ([]byte, error) {
	defer t.remove()

	if err := t.close(); err != nil {
		return nil, err
	}
	if t.frames == 0 {
		return []byte{}, nil
	}

	return readTempRecording(t.path)
}

func (t *tempRecording) discard() error {
	err := t.close()
	t.remove()

	return err
}

func (t *tempRecording) close() error {
	var encErr error
	if t.frames > 0 {
		encErr = t.enc.Close()
	}

	return errors.Join(encErr, t.f.Close())
}

func (t *tempRecording) remove() {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Unable to remove temporary recording %s: %v", t.path, err)
	}
}

func readTempRecording(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTempFileMissing, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrTempFileCorrupt, path)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTempFileCorrupt, err)
	}

	samples := make([]float32, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = utils.IntToFloat32(v, pcm.BitDepth)
	}

	return pcm.Take(samples).Encode(), nil
}

// RemoveOrphans deletes temporary recordings left in dir by a process that
// died while capturing. It returns how many files were removed.
func RemoveOrphans(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var removed int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, tempSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			log.Warnf("Unable to remove orphaned recording %s: %v", name, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Infof("Removed %d orphaned temporary recordings from %s", removed, dir)
	}

	return removed, nil
}
