// SPDX-License-Identifier: MIT

package sweep

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	panicWorkers   = "sweep: WithWorkers(n): n must be >= 1"
	panicNilLogger = "sweep: WithLogger: logger must not be nil"
)

// Option configures Run.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
}

// DefaultWorkers returns the worker count used when WithWorkers is absent.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

func defaultConfig() config {
	return config{
		workers: DefaultWorkers(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the number of goroutines evaluating rows.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(c *config) { c.workers = n }
}

// WithLogger routes progress records to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *config) { c.logger = l }
}
