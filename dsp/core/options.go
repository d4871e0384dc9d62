package core

// SamplingConfig describes the nominal timing of a sampling loop.
//
// Filters in this module never read the clock; DeltaTime is the interval
// the caller promises to call Update at.
type SamplingConfig struct {
	DeltaTime float64 // seconds between samples
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns a 100 Hz control loop.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		DeltaTime: 0.01,
	}
}

// SampleRate returns 1/DeltaTime, or 0 for a non-positive interval.
func (c SamplingConfig) SampleRate() float64 {
	if c.DeltaTime <= 0 {
		return 0
	}

	return 1 / c.DeltaTime
}

// WithDeltaTime sets the sampling interval in seconds.
func WithDeltaTime(deltaTime float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if deltaTime > 0 && IsFinite(deltaTime) {
			cfg.DeltaTime = deltaTime
		}
	}
}

// WithSampleRate sets the sampling interval from a rate in Hz.
func WithSampleRate(sampleRate float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.DeltaTime = 1 / sampleRate
		}
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
