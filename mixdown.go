// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/encode"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/flac"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mix"
)

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Mixdown reads CSV events, mixes every placement over the shared
// timeline and encodes the result. Any failing event row, source load or
// encode aborts the whole run.
func Mixdown(events io.Reader, cache *mix.SampleCache, enc encode.Encoder, quality float64) ([]byte, error) {
	parsed, err := mix.ReadEvents(events)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	timeline, err := mix.BuildTimeline(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := cache.LoadAll(timeline.Names()); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	mixed, err := mix.Mix(cache, timeline)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pcm := encode.FloatsToPCM16(mixed)

	data, err := enc.Encode(pcm, mix.Channels, mix.ProjectRate, quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", mix.ErrEncode, err)
	}

	return data, nil
}
