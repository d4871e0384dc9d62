// Package bank holds one independent streaming filter per sampled channel.
//
// A control loop that reads several sensors each tick filters every channel
// with its own filter instance. [Bank.ProcessFrame] runs one tick: the frame
// holds one sample per channel and is replaced by the filtered values.
//
// Basic usage:
//
//	b, err := bank.New(3, func(int) filter.Filter[float64] {
//	    return oneeuro.New(0.01, 1.0, 0.007)
//	})
//	...
//	frame := []float64{ax, ay, az}
//	if err := b.ProcessFrame(frame); err != nil { ... }
//
// Channels share no state. Like the filters themselves, a Bank is not safe
// for concurrent use.
package bank
