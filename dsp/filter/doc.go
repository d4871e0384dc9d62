// Package filter defines the contract shared by all streaming scalar filters
// in this module.
//
// A [Filter] consumes one sample per [Filter.Update] call and returns one
// filtered sample. Frequency-based filters assume Update is called at the
// interval they were configured with; calling at a different rate only
// degrades filtering, it never fails.
//
// Concrete filters live in sub-packages:
//   - lowpass: single-pole exponential low-pass with a cutoff in Hz
//   - oneeuro: adaptive One-Euro filter built from two low-pass filters
//   - average: moving average over a fixed window
//   - eva: exponentially weighted average with a beta weight
//   - median: sliding-window median
//
// None of the filters are safe for concurrent use. Use one instance per
// sampled channel; see package bank for a per-channel container.
package filter
