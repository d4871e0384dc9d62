// Package average provides a moving-average filter over a fixed window of
// the most recent samples.
//
// The window starts zero-filled, so the output ramps up from zero over the
// first n samples instead of averaging a partial window.
package average
