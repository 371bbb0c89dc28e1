package resolver

import "errors"

var (
	// ErrNilPipeline indicates New was called without a pipeline.
	ErrNilPipeline = errors.New("resolver: nil pipeline")

	// ErrNoSeeds indicates an empty seed list or a set with no values.
	ErrNoSeeds = errors.New("resolver: no seeds")

	// ErrNotInvertible indicates ReverseScan on a pipeline with a stage
	// whose destination ranges overlap.
	ErrNotInvertible = errors.New("resolver: pipeline is not invertible")

	// ErrNotFound indicates ReverseScan exhausted its limit.
	ErrNotFound = errors.New("resolver: no seed found below limit")
)
