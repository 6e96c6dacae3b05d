// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/utils"
)

// Resampler streams from src at a different sample rate using cubic
// interpolation over a four frame window. Interleaved layout and channel
// count are preserved. A one-pole low-pass is applied when downsampling
// to knock back aliasing above the destination Nyquist.
type Resampler struct {
	src      Source
	step     float64 // source frames consumed per output frame
	dstRate  int
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2;
	// interpolation happens between window[1] and window[2].
	window [4][]float32
	have   [4]bool
	primed bool

	pos    float64 // fractional position within [window[1], window[2])
	srcBuf []float32
	eof    bool

	lpState []float32
	lpAlpha float32
	useLP   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		step:     step,
		dstRate:  dstRate,
		channels: channels,
		srcBuf:   make([]float32, channels),
		// Crude single-pole filter; cutoff is nowhere near brick-wall but
		// keeps the worst aliasing out of speech-band material.
		useLP:   step > 1.0,
		lpAlpha: 0.5,
		lpState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window back one frame and pulls the next source frame
// into the last slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.have[0] = r.have[1]
	r.have[1] = r.have[2]
	r.have[2] = r.have[3]

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.window[3], r.srcBuf[:n])
		r.have[3] = true
		r.filter(r.window[3])
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.useLP {
		return
	}
	for c := 0; c < r.channels; c++ {
		frame[c] = r.lpAlpha*frame[c] + (1-r.lpAlpha)*r.lpState[c]
		r.lpState[c] = frame[c]
	}
}

// prime fills the initial window. Short streams duplicate their last frame
// into the remaining slots so interpolation still has four points.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.srcBuf[:n])
			r.have[i] = true

			if i == 0 && r.useLP {
				// Seed filter state to avoid a warm-up transient
				copy(r.lpState, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.have[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// ReadSamples produces samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			y0 := r.window[1][c]
			if r.have[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.have[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(
				y0, r.window[1][c], r.window[2][c], y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
