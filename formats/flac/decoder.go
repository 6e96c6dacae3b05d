// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audmix/audio"
)

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        flacReader
	sampleRate int
	channels   int
	bitDepth   int

	// Interleaved samples decoded from the current frame but not yet
	// handed to the caller. FLAC frames rarely line up with read sizes.
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// decodeNextFrame parses one FLAC frame and interleaves its subframes
// into the pending buffer.
func (s *source) decodeNextFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			s.eof = true
			return io.EOF
		}
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d",
			ErrCorruptStream, len(f.Subframes), s.channels)
	}

	scale := float32(int64(1) << (s.bitDepth - 1))
	frames := len(f.Subframes[0].Samples)

	for i := 0; i < frames; i++ {
		for ch := 0; ch < s.channels; ch++ {
			s.pending = append(s.pending, float32(f.Subframes[ch].Samples[i])/scale)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(s.pending) < len(dst) && !s.eof {
		if err := s.decodeNextFrame(); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
	}

	if len(s.pending) == 0 {
		return 0, io.EOF
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[:copy(s.pending, s.pending[n:])]

	if len(s.pending) == 0 && s.eof {
		return n, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrCorruptStream
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
