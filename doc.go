// SPDX-License-Identifier: EPL-2.0

// Package audmix mixes timed audio clips into a single stereo track.
//
// A mix is described by events, one per clip placement: a start time in
// milliseconds, a volume, a stereo pan position and the clip's file name.
// Every source is decoded and canonicalized to interleaved stereo float
// samples at the project rate, placed on a shared timeline, accumulated
// and clamped, then rendered to 16-bit PCM in the chosen container.
//
// Mixdown runs the whole pipeline over a CSV event list. The pieces it
// composes (audio decoding and canonicalization, timeline construction,
// the mixing engine, the encoders) live in their own packages and can be
// used directly for finer control.
package audmix
