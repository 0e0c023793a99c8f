// SPDX-License-Identifier: EPL-2.0

package voicememo

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/voicememo/formats/wav"
	"github.com/ik5/voicememo/internal/audiotest"
	"github.com/ik5/voicememo/pcm"
)

func TestConform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        *audiotest.Source
		wantFrames int
		wantFirst  float32
	}{
		{"memo format passthrough", audiotest.Constant(44100, 1, 1000, 0.5), 1000, 0.5},
		{"stereo at memo rate", audiotest.Generate(44100, 2, 10, func(_, ch int) float32 {
			return float32(ch) * 0.5
		}), 10, 0.25},
		{"upsample stereo", audiotest.Constant(22050, 2, 100, 0.5), 199, 0.5},
		{"empty", audiotest.Constant(48000, 1, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, err := Conform(tt.src)
			if err != nil {
				t.Fatalf("Conform() error = %v", err)
			}
			if buf.FrameLength() != tt.wantFrames {
				t.Fatalf("FrameLength() = %d, want %d", buf.FrameLength(), tt.wantFrames)
			}
			if tt.wantFrames > 0 && buf.At(0) != tt.wantFirst {
				t.Errorf("first frame = %v, want %v", buf.At(0), tt.wantFirst)
			}
			if tt.src.Closed() {
				t.Error("Conform closed its source")
			}
		})
	}
}

func TestConform_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Conform(audiotest.NewSource(8000, 0, nil)); !errors.Is(err, ErrNoChannels) {
		t.Errorf("zero channels error = %v", err)
	}

	boom := errors.New("boom")
	src := audiotest.Constant(44100, 1, 10, 0)
	src.Err = boom
	if _, err := Conform(src); !errors.Is(err, boom) {
		t.Errorf("source error = %v, want boom", err)
	}

	for _, rate := range []int{44100, 22050} {
		stalled := stalledSource{audiotest.Constant(rate, 2, 0, 0)}
		if _, err := Conform(stalled); !errors.Is(err, io.ErrNoProgress) {
			t.Errorf("stalled source at %d Hz error = %v, want io.ErrNoProgress", rate, err)
		}
	}
}

// stalledSource never yields samples nor ends.
type stalledSource struct {
	*audiotest.Source
}

func (stalledSource) ReadSamples([]float32) (int, error) { return 0, nil }

func TestImport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := []float32{0.1, -0.2, 0.3, -0.4}

	path := filepath.Join(dir, "memo.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.WriteFloat32(f, pcm.New(want)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	buf, err := Import(DefaultRegistry(), path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if buf.FrameLength() != len(want) {
		t.Fatalf("FrameLength() = %d, want %d", buf.FrameLength(), len(want))
	}
	for i, w := range want {
		if buf.At(i) != w {
			t.Errorf("frame %d = %v, want %v", i, buf.At(i), w)
		}
	}

	if _, err := Import(DefaultRegistry(), filepath.Join(dir, "memo.flac")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown extension error = %v", err)
	}
	if _, err := Import(DefaultRegistry(), filepath.Join(dir, "gone.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
