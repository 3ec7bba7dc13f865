package printing

import (
	"bytes"
	"io"
)

// NewIndentWriter creates and returns a new IndentWriter.
func NewIndentWriter(to io.Writer, indent string) *IndentWriter {
	return &IndentWriter{
		to:     to,
		indent: []byte(indent),
	}
}

// IndentWriter wraps an io.Writer and indents every non-empty line. It is
// used to print failure messages below the name of the failed test.
type IndentWriter struct {
	to      io.Writer
	indent  []byte
	midLine bool
}

var _ io.Writer = (*IndentWriter)(nil)

// Write to the underlying io.Writer, indenting each new line that has any
// content. Returns the number of *input* bytes written (i.e. not including
// the indentation) and whether an error occurred. If no error occurred the
// number of bytes written will always be equal to the length of the input.
func (w *IndentWriter) Write(p []byte) (int, error) {
	n := 0
	rest := p
	for len(rest) > 0 {
		var line []byte

		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
			rest = rest[i+1:]
		} else {
			line = rest
			rest = nil
		}

		var indent []byte
		if !w.midLine && line[0] != '\n' {
			indent = w.indent
		}

		out := make([]byte, 0, len(indent)+len(line))
		out = append(append(out, indent...), line...)
		if cnt, err := w.to.Write(out); err != nil {
			if cnt < len(indent) {
				cnt = 0
			} else {
				cnt -= len(indent)
			}
			return n + cnt, err
		}
		n += len(line)
		w.midLine = line[len(line)-1] != '\n'
	}
	return n, nil
}
