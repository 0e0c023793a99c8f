// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/voicememo/utils"
)

// Resampler streams a mono source at another sample rate using cubic
// interpolation. Downsampling runs the input through a one-pole low-pass
// filter first.
//
// Output frame n maps to source position n*srcRate/dstRate. The stream ends
// at the last source frame, so N input frames produce
// floor((N-1)*dstRate/srcRate)+1 output frames.
type Resampler struct {
	src     Source
	dstRate int
	step    float64

	// window[1] is source frame k; window[0], window[2], window[3] are its
	// neighbours, clamped at the stream edges.
	window [4]float32
	k      int
	frac   float64
	primed bool

	in    []float32
	inPos int
	inLen int
	read  int
	last  int
	tail  float32
	eof   bool

	filter      bool
	filterAlpha float32
	filterState float32
}

// NewResampler returns a resampler from the mono src to dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	step := float64(src.SampleRate()) / float64(dstRate)
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	return &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		in:          make([]float32, size),
		filter:      step > 1,
		filterAlpha: 0.5,
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return len(r.in) }
func (r *Resampler) Close() error    { return r.src.Close() }

func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(dst) {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return n, err
			}
		}

		if r.eof && (r.k > r.last || (r.k == r.last && r.frac > 0)) {
			return n, io.EOF
		}

		w := r.window
		dst[n] = utils.CubicInterpolate(w[0], w[1], w[2], w[3], float32(r.frac))
		n++
		r.frac += r.step
	}

	return n, nil
}

func (r *Resampler) prime() error {
	first, err := r.next()
	if err != nil {
		return err
	}
	if r.eof && r.read == 0 {
		return io.EOF
	}

	r.window[0], r.window[1] = first, first
	for i := 2; i < 4; i++ {
		if r.window[i], err = r.next(); err != nil {
			return err
		}
	}
	r.primed = true

	return nil
}

func (r *Resampler) advance() error {
	s, err := r.next()
	if err != nil {
		return err
	}

	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], s
	r.k++

	return nil
}

// next yields the following source sample, repeating the final one once the
// source is drained.
func (r *Resampler) next() (float32, error) {
	empty := 0
	for r.inPos >= r.inLen {
		if r.eof {
			return r.tail, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n
		switch {
		case err == io.EOF:
			r.eof = true
			r.last = r.read + n - 1
		case err != nil:
			return 0, fmt.Errorf("resample: %w", err)
		case n == 0:
			empty++
			if empty > MaxEmptyReads {
				return 0, io.ErrNoProgress
			}
		}
	}

	s := r.in[r.inPos]
	r.inPos++
	r.read++

	if r.filter {
		r.filterState += r.filterAlpha * (s - r.filterState)
		s = r.filterState
	}
	r.tail = s

	return s, nil
}
