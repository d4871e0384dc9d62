// Package smoothing scores a filter run against a known clean reference:
// how much noise it removed and how much lag it added.
//
// Noise is reported as the RMS error of the raw and filtered signals and
// the ratio of the two in dB. Lag is the shift in samples that best
// correlates the filtered signal with the reference, searched only when
// [WithMaxLag] is given.
package smoothing
