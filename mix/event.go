// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Event is one timeline occurrence of a named source. Multiple events
// may reference the same source; each is placed independently.
type Event struct {
	TimeMS float64
	Volume float64
	Pan    float64
	Name   string
}

// ReadEvents parses the headerless event list: one record per line with
// four ordered fields, time_ms,volume,pan,source_name. Any malformed
// line aborts the whole read; a partially usable timeline is worse than
// no timeline.
func ReadEvents(r io.Reader) ([]Event, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = 4
	rdr.TrimLeadingSpace = true

	var events []Event

	for line := 1; ; line++ {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidEvent, line, err)
		}

		timeMS, err := parseFinite(record[0], "time", line)
		if err != nil {
			return nil, err
		}

		volume, err := parseFinite(record[1], "volume", line)
		if err != nil {
			return nil, err
		}

		pan, err := parseFinite(record[2], "pan", line)
		if err != nil {
			return nil, err
		}

		name := record[3]
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty source name", ErrInvalidEvent, line)
		}

		events = append(events, Event{
			TimeMS: timeMS,
			Volume: volume,
			Pan:    pan,
			Name:   name,
		})
	}

	return events, nil
}

// parseFinite parses a numeric event field. NaN and the infinities pass
// strconv but poison every downstream computation (a NaN time turns the
// float to int offset conversion into a huge negative index), so they
// are rejected alongside parse failures.
func parseFinite(value, field string, line int) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not numeric", ErrInvalidEvent, line, field, value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: line %d: %s %q is not finite", ErrInvalidEvent, line, field, value)
	}

	return v, nil
}
