// Package median provides a sliding-window median filter.
//
// The filter keeps the last n samples both in arrival order and sorted.
// Each update replaces the oldest sample in the sorted copy and moves it to
// its new position, so the cost is O(n) with no allocation. For even n the
// upper of the two middle samples is returned.
//
// Median filters remove isolated spikes that a linear low-pass would only
// spread out.
package median
