package iso20022

import "runtime"

// Option configures document processing.
type Option func(*Options)

// Options holds all configuration shared by the engine, the validation
// propagator, and the worker pool.
type Options struct {
	// StrictChoices rejects choice records with more than one populated
	// alternative. The published schemas model exclusivity but producers
	// are traditionally trusted to set at most one, so lenient is the
	// default.
	StrictChoices bool

	// WorkerCount is the number of workers used for batch processing.
	WorkerCount int

	// CollectMetrics enables the atomic counters on Metrics.
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		StrictChoices:  false,
		WorkerCount:    runtime.NumCPU(),
		CollectMetrics: true,
	}
}

// WithStrictChoices enables exactly-one checking for choice records.
// Violations are reported with code 1007.
func WithStrictChoices(enable bool) Option {
	return func(o *Options) {
		o.StrictChoices = enable
	}
}

// WithWorkerCount sets the batch worker count. Values <= 0 fall back to
// runtime.NumCPU().
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.WorkerCount = n
		} else {
			o.WorkerCount = runtime.NumCPU()
		}
	}
}

// WithMetrics enables or disables metrics collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}
