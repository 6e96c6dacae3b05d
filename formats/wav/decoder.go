package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
)

// wavReader is an interface for gowav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) / 32768.0
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker; buffer non-seekable input in memory
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
