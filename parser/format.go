package parser

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// ErrNilAlmanac indicates Format was handed a nil table or pipeline.
var ErrNilAlmanac = errors.New("parser: nil almanac")

// Format writes a in the text form Parse accepts. Rules are written in
// ascending source order, one blank line between sections.
func Format(w io.Writer, a *Almanac) error {
	if a == nil || a.Pipeline == nil {
		return ErrNilAlmanac
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("seeds:")
	for _, s := range a.Seeds {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatUint(s, 10))
	}
	bw.WriteByte('\n')

	for _, st := range a.Pipeline.Stages() {
		bw.WriteByte('\n')
		bw.WriteString(st.From() + "-to-" + st.To() + " map:\n")
		for _, r := range st.Rules() {
			bw.WriteString(r.String())
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
