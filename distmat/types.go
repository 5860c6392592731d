// Package distmat: options and sentinel errors.
package distmat

import (
	"errors"

	"github.com/distree/distree/distance"
)

// Sentinel errors for matrix streaming.
var (
	// ErrNilTree indicates a nil *phylo.Tree input.
	ErrNilTree = errors.New("distmat: tree is nil")

	// ErrNilDepths indicates a nil *phylo.DepthTable input.
	ErrNilDepths = errors.New("distmat: depth table is nil")

	// ErrNilIndex indicates a nil *lca.Index input.
	ErrNilIndex = errors.New("distmat: lca index is nil")

	// ErrNilWriter indicates a nil output sink.
	ErrNilWriter = errors.New("distmat: writer is nil")

	// ErrIO wraps any failure while writing to the sink. Rows flushed
	// before the failure remain on the stream.
	ErrIO = errors.New("distmat: output write failed")
)

// Options holds configurable parameters for one Compute run.
type Options struct {
	// Mode selects the metric; Patristic by default.
	Mode distance.Mode

	// Workers bounds the row-computation pool. Zero or negative means
	// runtime.GOMAXPROCS(0). Output bytes do not depend on this value.
	Workers int

	// Midpoint reroots the tree at the diameter midpoint before any
	// index is built.
	Midpoint bool
}

// Option configures optional behavior of Compute.
type Option func(*Options)

// DefaultOptions returns the zero configuration: Patristic mode,
// automatic pool size, no rerooting.
func DefaultOptions() Options {
	return Options{Mode: distance.Patristic, Workers: 0, Midpoint: false}
}

// WithMode selects the distance metric.
func WithMode(m distance.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithWorkers overrides the worker-pool size. Values < 1 restore the
// automatic default.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMidpoint enables midpoint rerooting before index construction.
func WithMidpoint() Option {
	return func(o *Options) { o.Midpoint = true }
}
