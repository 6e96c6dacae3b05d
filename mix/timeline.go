// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"
	"math"
)

const (
	// ProjectRate is the single fixed sample rate all mixed output is
	// produced at.
	ProjectRate = 44100

	// Channels is the interleaved channel count of canonical samples
	// and the output buffer.
	Channels = 2
)

// PlacementRecord places one occurrence of a source on the output
// timeline. Offset is an interleaved sample index and is always even,
// so every placement starts on a left-channel boundary.
type PlacementRecord struct {
	Offset int
	Volume float64
	Pan    float64
}

// Timeline groups placement records by source name. Record order within
// a group carries no meaning; duplicates are kept and simply sum.
type Timeline map[string][]PlacementRecord

// toOffset converts a millisecond position to the interleaved sample
// index of the first left-channel sample. A computed odd index is
// rounded down to the preceding even value to keep left/right
// alternation intact.
func toOffset(timeMS float64) int {
	val := int(timeMS / 1000.0 * ProjectRate * Channels)
	if val%2 != 0 {
		val--
	}
	return val
}

// BuildTimeline converts the full event sequence into frame-accurate
// placement records grouped by source name.
func BuildTimeline(events []Event) (Timeline, error) {
	timeline := make(Timeline, len(events))

	for _, ev := range events {
		if ev.Name == "" {
			return nil, fmt.Errorf("%w: empty source name", ErrInvalidEvent)
		}
		// Events may be built directly rather than through ReadEvents, so
		// the finiteness checks repeat here. A non-finite time would turn
		// into a garbage offset below; non-finite volume or pan would
		// poison the accumulated buffer.
		if !finite(ev.TimeMS) || !finite(ev.Volume) || !finite(ev.Pan) {
			return nil, fmt.Errorf("%w: non-finite field for %q", ErrInvalidEvent, ev.Name)
		}
		if ev.TimeMS < 0 {
			return nil, fmt.Errorf("%w: negative time %v for %q", ErrInvalidEvent, ev.TimeMS, ev.Name)
		}

		timeline[ev.Name] = append(timeline[ev.Name], PlacementRecord{
			Offset: toOffset(ev.TimeMS),
			Volume: ev.Volume,
			Pan:    ev.Pan,
		})
	}

	return timeline, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Names returns the distinct source names referenced by the timeline.
func (t Timeline) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}
