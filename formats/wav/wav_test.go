// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/voicememo/audio"
	"github.com/ik5/voicememo/pcm"
)

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestWriteFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	want := []float32{0, 0.5, -0.25, 1, -1, 0.125, 0.001}

	var file bytes.Buffer
	if err := WriteFloat32(&file, pcm.New(want)); err != nil {
		t.Fatalf("WriteFloat32() error = %v", err)
	}
	if got := file.Len(); got != 44+len(want)*4 {
		t.Errorf("file size = %d, want %d", got, 44+len(want)*4)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 44100 || src.Channels() != 1 {
		t.Errorf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
	}

	got := readAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWritePCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.5, -0.5, 1, -1, 2}
	want := []float32{0, 16383.0 / 32768, -0.5, 32767.0 / 32768, -1, 32767.0 / 32768}

	var file bytes.Buffer
	if err := WritePCM16(&file, pcm.New(in)); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	// A plain reader forces the in-memory path.
	src, err := Decoder{}.Decode(io.MultiReader(&file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecode_Stereo24(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stereo.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, 24, 2, formatPCM)
	err = enc.Write(&goaudio.IntBuffer{
		Data:           []int{1 << 22, -1 << 22, 0, -1 << 23},
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 22050},
		SourceBitDepth: 24,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
	}

	want := []float32{0.5, -0.5, 0, -1}
	got := readAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	var eightBit bytes.Buffer
	if err := writeHeader(&eightBit, formatPCM, 8, 8000, 4); err != nil {
		t.Fatal(err)
	}
	eightBit.Write([]byte{128, 129, 127, 128})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotWavFile},
		{"garbage", []byte("definitely not a RIFF file at all, sorry"), ErrNotWavFile},
		{"8 bit", eightBit.Bytes(), ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteFloat32_Empty(t *testing.T) {
	t.Parallel()

	var file bytes.Buffer
	if err := WriteFloat32(&file, pcm.New(nil)); err != nil {
		t.Fatal(err)
	}
	if file.Len() != 44 {
		t.Errorf("header size = %d, want 44", file.Len())
	}
}
