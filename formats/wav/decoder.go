// SPDX-License-Identifier: EPL-2.0

// Package wav reads integer and IEEE float WAV files and writes memos out as
// WAV.
package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/voicememo/audio"
	"github.com/ik5/voicememo/formats/internal/intpcm"
)

const (
	formatPCM   = 1
	formatFloat = 3
)

// floatSource streams 32 bit IEEE float samples from the data chunk.
type floatSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *floatSource) SampleRate() int { return s.sampleRate }
func (s *floatSource) Channels() int   { return s.channels }
func (s *floatSource) Close() error    { return nil }
func (s *floatSource) BufSize() int    { return 4096 }

func (s *floatSource) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 4
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.r, s.buf[:need])
	samples := n / 4
	for i := range samples {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(s.buf[4*i:]))
	}

	switch {
	case err == io.ErrUnexpectedEOF, err == io.EOF:
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("wav: %w", err)
	}

	return samples, nil
}

type Decoder struct{}

// Decode accepts 16, 24 or 32 bit integer PCM and 32 bit float WAVs. Inputs
// that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := &goaudio.Format{
		NumChannels: int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
	}
	depth := int(dec.BitDepth)

	switch {
	case dec.WavAudioFormat == formatPCM && (depth == 16 || depth == 24 || depth == 32):
		return intpcm.New(dec, format, depth), nil

	case dec.WavAudioFormat == formatFloat && depth == 32:
		if err := dec.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
		}
		if dec.PCMChunk == nil {
			return nil, ErrUnsupportedWavChunks
		}

		return &floatSource{
			r:          io.LimitReader(dec.PCMChunk, int64(dec.PCMSize)),
			sampleRate: format.SampleRate,
			channels:   format.NumChannels,
		}, nil
	}

	return nil, fmt.Errorf("%w: format %d, %d bit", ErrUnsupportedEncoding, dec.WavAudioFormat, depth)
}
