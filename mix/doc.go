// SPDX-License-Identifier: EPL-2.0

// Package mix places pre-recorded audio clips onto a shared timeline
// and sums them into one continuous stereo buffer.
//
// The pipeline has two phases. Phase one is independent per-source
// work: each distinct source name is decoded and canonicalized once
// (see SampleCache.LoadAll, which runs sources in parallel). Phase two
// is the sequential mix: BuildTimeline converts events into even,
// frame-aligned placement offsets, and Mix accumulates every placement
// with per-channel gain before a single hard-clip pass.
//
//	events, err := mix.ReadEvents(f)
//	timeline, err := mix.BuildTimeline(events)
//	cache := mix.NewFileCache(registry, mix.ProjectRate)
//	err = cache.LoadAll(timeline.Names())
//	out, err := mix.Mix(cache, timeline)
//
// All failures are fatal: an unreadable event line, a missing source or
// a failed resample each abort the run before any output exists.
package mix
