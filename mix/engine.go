// SPDX-License-Identifier: EPL-2.0

package mix

// Mix places every timeline record's canonical sample onto one output
// buffer and returns it, hard-clipped to [-1, 1].
//
// The buffer is sized up front so no accumulation write can land past
// its end; nothing resizes at runtime. Accumulation is sequential,
// which keeps the float summation order, and therefore the output,
// bit-for-bit deterministic.
func Mix(cache *SampleCache, timeline Timeline) ([]float32, error) {
	// Every source must be resident before any accumulation starts:
	// failures surface here, not halfway into a partially written mix.
	for name := range timeline {
		if _, err := cache.GetOrLoad(name); err != nil {
			return nil, err
		}
	}

	out := make([]float32, requiredLength(cache, timeline))

	for name, records := range timeline {
		sample, err := cache.GetOrLoad(name)
		if err != nil {
			return nil, err
		}

		for _, rec := range records {
			accumulate(out, sample.Data, rec.Offset, rec.Volume, rec.Pan)
		}
	}

	clip(out)

	return out, nil
}

// requiredLength is the smallest buffer that holds every placement:
// the maximum over all groups of (largest offset + sample length).
func requiredLength(cache *SampleCache, timeline Timeline) int {
	var length int

	for name, records := range timeline {
		sample, ok := cache.get(name)
		if !ok || len(records) == 0 {
			continue
		}

		maxOffset := 0
		for _, rec := range records {
			if rec.Offset > maxOffset {
				maxOffset = rec.Offset
			}
		}

		if need := maxOffset + len(sample.Data); need > length {
			length = need
		}
	}

	return length
}

// accumulate sums sample into out starting at offset, applying volume
// and the linear pan law. At pan 0 both channels pass unattenuated;
// otherwise the left gain is clamp(1-pan, 0, 1) and the right gain is
// clamp(1+pan, 0, 1), so pan 1 silences the left channel entirely.
// The law is linear, not constant-power.
func accumulate(out, sample []float32, offset int, volume, pan float64) {
	vol := float32(volume)

	left := float32(1)
	right := float32(1)
	if pan != 0 {
		left = clampGain(1 - float32(pan))
		right = clampGain(1 + float32(pan))
	}

	for i, s := range sample {
		gain := left
		if i%2 != 0 {
			gain = right
		}

		out[offset+i] += s * vol * gain
	}
}

func clampGain(g float32) float32 {
	if g > 1 {
		return 1
	}
	if g < 0 {
		return 0
	}
	return g
}

// clip bounds every accumulated value to the valid output range. This
// is the single clamp pass; amplitudes run unconstrained before it.
func clip(out []float32) {
	for i, v := range out {
		if v > 1 {
			out[i] = 1
		} else if v < -1 {
			out[i] = -1
		}
	}
}
