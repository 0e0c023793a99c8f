// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/voicememo/pcm"
	"github.com/ik5/voicememo/utils"
)

const chunkFrames = 8192

func writeHeader(w io.Writer, format uint16, bits uint16, sampleRate int, frames int) error {
	const channels = 1

	blockAlign := uint16(channels) * bits / 8
	dataSize := uint32(frames) * uint32(blockAlign)

	header := make([]byte, 0, 44)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, 36+dataSize)
	header = append(header, "WAVE"...)

	header = append(header, "fmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, format)
	header = binary.LittleEndian.AppendUint16(header, channels)
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate)*uint32(blockAlign))
	header = binary.LittleEndian.AppendUint16(header, blockAlign)
	header = binary.LittleEndian.AppendUint16(header, bits)

	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFloat32 writes buf as a mono 32 bit IEEE float WAV. The data chunk is
// the memo byte layout unchanged.
func WriteFloat32(w io.Writer, buf *pcm.Buffer) error {
	frames := buf.FrameLength()
	if err := writeHeader(w, formatFloat, 32, int(buf.SampleRate()), frames); err != nil {
		return err
	}

	samples := make([]float32, min(frames, chunkFrames))
	out := make([]byte, 0, len(samples)*pcm.BytesPerSample)
	for off := 0; off < frames; {
		n := buf.CopySamples(samples, off)
		off += n

		out = pcm.Take(samples[:n]).AppendEncoded(out[:0])
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WritePCM16 writes buf as a mono 16 bit integer WAV, clamping to [-1,1].
func WritePCM16(w io.Writer, buf *pcm.Buffer) error {
	frames := buf.FrameLength()
	if err := writeHeader(w, formatPCM, 16, int(buf.SampleRate()), frames); err != nil {
		return err
	}

	samples := make([]float32, min(frames, chunkFrames))
	out := make([]byte, 0, len(samples)*2)
	for off := 0; off < frames; {
		n := buf.CopySamples(samples, off)
		off += n

		out = out[:0]
		for _, s := range samples[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(utils.Float32ToInt16(s)))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
