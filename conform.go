// SPDX-License-Identifier: EPL-2.0

package voicememo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/voicememo/audio"
	"github.com/ik5/voicememo/formats/aiff"
	"github.com/ik5/voicememo/formats/mp3"
	"github.com/ik5/voicememo/formats/vorbis"
	"github.com/ik5/voicememo/formats/wav"
	"github.com/ik5/voicememo/pcm"
)

var (
	// ErrUnknownFormat is returned by Import for files no decoder claims.
	ErrUnknownFormat = errors.New("unknown audio format")
	// ErrNoChannels is returned for sources reporting zero channels.
	ErrNoChannels = errors.New("source has no channels")
)

const readSize = 4096

// DefaultRegistry knows wav, mp3, ogg and aiff files.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Conform reads src to the end and returns it as a memo buffer: channels are
// averaged into one and the result is resampled to 44.1 kHz when needed.
// Conform does not close src.
func Conform(src audio.Source) (*pcm.Buffer, error) {
	if src.Channels() < 1 {
		return nil, ErrNoChannels
	}

	var stream audio.Source = audio.NewMonoMixer(src)
	if src.SampleRate() != int(pcm.SampleRate) {
		rs, err := audio.NewResampler(stream, int(pcm.SampleRate))
		if err != nil {
			return nil, err
		}
		stream = rs
	}

	samples := make([]float32, 0, int(pcm.SampleRate))
	buf := make([]float32, readSize)
	empty := 0
	for {
		n, err := stream.ReadSamples(buf)
		samples = append(samples, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("conforming audio: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty > audio.MaxEmptyReads {
			return nil, fmt.Errorf("conforming audio: %w", io.ErrNoProgress)
		}
	}

	return pcm.Take(samples), nil
}

// Import decodes the file at path with the decoder registered for its
// extension and conforms it.
func Import(reg *audio.Registry, path string) (*pcm.Buffer, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return Conform(src)
}
