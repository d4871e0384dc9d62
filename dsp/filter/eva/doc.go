// Package eva provides an exponentially weighted average (EVA) filter:
//
//	y[n] = beta*y[n-1] + (1-beta)*x[n]
//
// beta close to 1 gives a very smooth, slow output; beta = 0 passes the
// input through unchanged. Unlike package lowpass the weight is given
// directly instead of being derived from a cutoff frequency.
package eva
