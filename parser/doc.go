// Package parser reads the plain-text table that feeds a remapping
// pipeline and writes it back out.
//
// What:
//
//   - A seed line "seeds: 79 14 55 13", read either as scalars or as
//     (start, length) pairs.
//   - Stage sections, each a header "<from>-to-<to> map:" followed by
//     lines of three integers "destStart sourceStart length".
//   - Blank lines anywhere; CRLF or LF line endings.
//
// The grammar is a participle parser over a small lexer (Int, Ident,
// Punct, EOL, Whitespace). Numbers are captured as text and converted
// with strconv so that 64-bit overflow is reported as ErrBadNumber rather
// than wrapped silently.
//
// Errors:
//
//   - ErrSyntax:         a token does not fit the grammar (e.g. "-5", "12a",
//     four numbers on a rule line).
//   - ErrBadNumber:      an integer does not fit in 64 bits.
//   - ErrMissingSection: fewer stage sections than required (default 7).
//   - ErrExtraSection:   more stage sections than required.
//   - ErrOddSeeds:       Ranges() on an odd number of seed values.
//   - remap errors (ErrEmptyRule, ErrOverflow, ErrOverlap, ErrBrokenChain)
//     wrapped with the line:column of the offending rule or section.
//
// The whole input is materialized before parsing; there is no streaming
// or partial recovery.
package parser
