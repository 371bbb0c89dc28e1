package parser

import "errors"

var (
	// ErrSyntax indicates input that does not match the table grammar.
	ErrSyntax = errors.New("parser: syntax error")
	// ErrBadNumber indicates an integer token that does not fit in uint64.
	ErrBadNumber = errors.New("parser: number out of range")
	// ErrMissingSection indicates fewer stage sections than required.
	ErrMissingSection = errors.New("parser: missing stage section")
	// ErrExtraSection indicates more stage sections than required.
	ErrExtraSection = errors.New("parser: unexpected extra stage section")
	// ErrOddSeeds indicates a seed list that cannot be read as (start, length) pairs.
	ErrOddSeeds = errors.New("parser: seed ranges need an even number of values")
)
