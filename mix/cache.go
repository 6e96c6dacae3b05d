// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audmix/audio"
)

// CanonicalSample is one decoded source in the fixed mixing format:
// interleaved stereo float32 at ProjectRate. Data is read-only once the
// sample is in the cache; amplitudes are not clamped here.
type CanonicalSample struct {
	Name string
	Data []float32
}

// LoadFunc produces the canonical sample data for a source name.
type LoadFunc func(name string) ([]float32, error)

// SampleCache loads each distinct source name exactly once and retains
// the canonical result for the lifetime of the run.
type SampleCache struct {
	load LoadFunc

	mtx     sync.Mutex
	samples map[string]*CanonicalSample
}

func NewSampleCache(load LoadFunc) *SampleCache {
	return &SampleCache{
		load:    load,
		samples: make(map[string]*CanonicalSample),
	}
}

// NewFileCache returns a cache that loads sources from disk, picking the
// decoder by file extension from reg and canonicalizing to projectRate.
func NewFileCache(reg *audio.Registry, projectRate int) *SampleCache {
	return NewSampleCache(fileLoader(reg, projectRate))
}

func fileLoader(reg *audio.Registry, projectRate int) LoadFunc {
	return func(name string) ([]float32, error) {
		format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

		dec, ok := reg.Get(format)
		if !ok {
			return nil, fmt.Errorf("%w: %s: no decoder for format %q", ErrSourceUnavailable, name, format)
		}

		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
		}
		defer f.Close()

		src, err := dec.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
		}
		defer src.Close()

		data, err := audio.Canonicalize(src, projectRate)
		if err != nil {
			// Only errors tagged by the resample stage itself count as
			// resample failures. A mid-stream read error from the decoder
			// keeps its identity through the pipeline and is classified as
			// an unavailable source, whatever the rates involved.
			if errors.Is(err, audio.ErrResample) {
				return nil, fmt.Errorf("%w: %s: %d Hz to %d Hz: %v",
					ErrResample, name, src.SampleRate(), projectRate, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
		}

		return data, nil
	}
}

// GetOrLoad returns the canonical sample for name, invoking the loader
// on first request. Loader failures are fatal to the run and are not
// retried; a missing source makes the timeline under-specified.
func (c *SampleCache) GetOrLoad(name string) (*CanonicalSample, error) {
	c.mtx.Lock()
	if sample, ok := c.samples[name]; ok {
		c.mtx.Unlock()
		return sample, nil
	}
	c.mtx.Unlock()

	data, err := c.load(name)
	if err != nil {
		return nil, err
	}

	sample := &CanonicalSample{Name: name, Data: data}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	// A concurrent load of the same name may have won the race; keep the
	// stored instance so callers always see one CanonicalSample per name.
	if existing, ok := c.samples[name]; ok {
		return existing, nil
	}

	c.samples[name] = sample
	return sample, nil
}

// LoadAll decodes every name concurrently and joins before returning.
// Distinct sources have no data dependency, so each runs on its own
// goroutine; the first failure cancels the run. Names are deduplicated
// first, keeping decode work at one pass per distinct source.
func (c *SampleCache) LoadAll(names []string) error {
	distinct := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		c.mtx.Lock()
		_, loaded := c.samples[name]
		c.mtx.Unlock()

		if !loaded {
			distinct = append(distinct, name)
		}
	}

	var g errgroup.Group

	for _, name := range distinct {
		name := name
		g.Go(func() error {
			data, err := c.load(name)
			if err != nil {
				return err
			}

			c.mtx.Lock()
			// Same race rule as GetOrLoad: a concurrent load of this name
			// may have stored first, and callers already holding that
			// instance must keep seeing it.
			if _, ok := c.samples[name]; !ok {
				c.samples[name] = &CanonicalSample{Name: name, Data: data}
			}
			c.mtx.Unlock()

			return nil
		})
	}

	return g.Wait()
}

// get returns a resident sample without invoking the loader.
func (c *SampleCache) get(name string) (*CanonicalSample, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	sample, ok := c.samples[name]
	return sample, ok
}

// Len reports how many distinct sources the cache holds.
func (c *SampleCache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.samples)
}
