// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/swhelan123/mp3wav/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the
// channel count. A simple one-pole low-pass filter is applied when
// downsampling to reduce aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source samples per output sample
	channels int

	// Ring of 4 frames for cubic interpolation:
	// window[0]=t-1, window[1]=t0, window[2]=t+1, window[3]=t+2
	window   [4][]float32
	haveFrm  [4]bool
	primed   bool
	pos      float64 // fractional position between window[1] and window[2]
	readBuf  []float32
	eof      bool

	lowpass     bool
	alpha       float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		readBuf:     make([]float32, channels),
		lowpass:     ratio > 1.0,
		alpha:       0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left by one frame and reads the next
// source frame into window[3].
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.haveFrm[0] = r.haveFrm[1]
	r.haveFrm[1] = r.haveFrm[2]
	r.haveFrm[2] = r.haveFrm[3]

	n, err := r.src.ReadSamples(r.readBuf)
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.haveFrm[3] = true

		if r.lowpass {
			for c := 0; c < r.channels; c++ {
				// One-pole low-pass: y[n] = a*x[n] + (1-a)*y[n-1]
				r.window[3][c] = r.alpha*r.window[3][c] + (1-r.alpha)*r.filterState[c]
				r.filterState[c] = r.window[3][c]
			}
		}
	} else {
		r.haveFrm[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.haveFrm[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// prime fills the interpolation window with the first source frames,
// duplicating the last valid frame when the source is shorter than
// the window.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.haveFrm[i] = true

			// Seed the filter with the first frame to avoid a
			// warm-up transient
			if i == 0 && r.lowpass {
				copy(r.filterState, r.readBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.haveFrm[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// ReadSamples produces samples at the target rate. dst length must be
// a multiple of the channel count.
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
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
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

		if !r.haveFrm[1] || !r.haveFrm[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			// Duplicate edge frames when the window is incomplete
			y0 := y1
			if r.haveFrm[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.haveFrm[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
