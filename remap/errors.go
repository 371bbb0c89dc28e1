package remap

import "errors"

// Sentinel errors for rule, stage and pipeline construction.
// Constructors wrap them with the offending rule or stage; match with errors.Is.
var (
	// ErrEmptyRule indicates a rule with zero length.
	ErrEmptyRule = errors.New("remap: rule length must be > 0")

	// ErrOverflow indicates that source+length or dest+length exceeds math.MaxUint64.
	ErrOverflow = errors.New("remap: rule bound overflows uint64")

	// ErrOverlap indicates two rules of one stage claim the same source value.
	ErrOverlap = errors.New("remap: overlapping source ranges in stage")

	// ErrNoStages indicates a pipeline built from zero stages.
	ErrNoStages = errors.New("remap: pipeline needs at least one stage")

	// ErrNilStage indicates a nil *Stage passed to NewPipeline.
	ErrNilStage = errors.New("remap: nil stage")

	// ErrBrokenChain indicates that a stage's target category differs from
	// the next stage's source category (only checked under WithChainCheck).
	ErrBrokenChain = errors.New("remap: stage categories do not chain")
)
