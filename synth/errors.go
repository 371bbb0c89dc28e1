package synth

import (
	"errors"
	"fmt"
)

// ErrSpanTooSmall indicates the configured span cannot hold the requested
// number of non-empty rules (scattered layouts need span ≥ 2·rules,
// bijective layouts span ≥ rules).
var ErrSpanTooSmall = errors.New("synth: span too small for rule count")

// ErrBadCount indicates a non-positive count passed to Seeds or Scalars.
var ErrBadCount = errors.New("synth: count must be > 0")

// synthErrorf prefixes a formatted message with the generator name.
func synthErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
