// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(buf, m.data[m.offset:])
	m.offset += n

	return n, nil
}

func pcm16(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}

	return out
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an mp3"))); err == nil {
		t.Error("Decode() accepted garbage")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{
		sampleRate: 44100,
		data:       pcm16(0, 16384, -32768, 32767),
	}}
	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Fatalf("format = %d Hz %d ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}
	want := []float32{0, 0.5, -1, 32767.0 / 32768}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i], w)
		}
	}

	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("drained read = %d, %v", n, err)
	}
}
