package collection

import (
	"runtime"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/staircase/stairs"
)

const (
	panicWorkersInvalid = "collection: WithWorkers: workers must be >= 1"
	panicLoggerNil      = "collection: WithLogger: logger must not be nil"
)

// Option mutates pairwise-statistic options.
type Option func(*Options)

// Options stores the effective configuration for Cov and Corr.
type Options struct {
	workers int
	corr    stairs.CorrOptions
	logger  l.Wrapper
}

// WithWorkers bounds the number of pairs computed concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithCorrOptions sets the window, lag and clip policy applied to every pair.
func WithCorrOptions(c stairs.CorrOptions) Option {
	return func(o *Options) { o.corr = c }
}

// WithLogger injects the logger used to report failing pairs.
func WithLogger(logger l.Wrapper) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: runtime.GOMAXPROCS(0),
		corr:    stairs.DefaultCorrOptions(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = l.NewNopLoggerWrapper()
	}

	return o
}
