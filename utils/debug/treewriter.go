package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented multi-line text, one line per tree node or
// node property.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return NewTreeWriterWithIndent("  ")
}

func NewTreeWriterWithIndent(indent string) *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: indent,
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Len returns number of bytes accumulated so far.
func (tw *TreeWriter) Len() int {
	return tw.w.Len()
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value always quoted so empty and
// whitespace only values remain visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}
