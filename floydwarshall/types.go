package floydwarshall

import (
	"context"
	"errors"
)

// ErrCorruptSnapshot indicates a Snapshot whose tables do not describe an index.
var ErrCorruptSnapshot = errors.New("floydwarshall: corrupt snapshot")

// Options configures an Indexer.
type Options struct {
	// Ctx is checked once per intermediate node.
	Ctx context.Context

	// Workers is the number of goroutines relaxing rows in parallel (>= 1).
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context and a single worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets the cancellation context. Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("floydwarshall: WithContext(nil)")
	}

	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithWorkers relaxes rows on n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("floydwarshall: WithWorkers needs at least one worker")
	}

	return func(o *Options) {
		o.Workers = n
	}
}
