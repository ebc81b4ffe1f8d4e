package logging

import (
	"bytes"
	"io"
)

// PrefixWriter stamps every line written through it with a fixed prefix.
// The launcher routes its own log output through one so operators can tell
// launcher lines apart from the wrapped CLI's output on the same terminal.
type PrefixWriter struct {
	prefix  []byte
	out     io.Writer
	partial bytes.Buffer // tail of the last write with no trailing newline
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), out: w}
}

// Write buffers until a newline arrives, then emits whole prefixed lines.
// Incomplete trailing data stays buffered for the next Write.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	total := len(p)

	for {
		nl := bytes.IndexByte(p, '\n')
		if nl < 0 {
			pw.partial.Write(p)
			return total, nil
		}

		if _, err := pw.out.Write(pw.prefix); err != nil {
			return 0, err
		}
		if pw.partial.Len() > 0 {
			if _, err := pw.out.Write(pw.partial.Bytes()); err != nil {
				return 0, err
			}
			pw.partial.Reset()
		}
		if _, err := pw.out.Write(p[:nl+1]); err != nil {
			return 0, err
		}
		p = p[nl+1:]
	}
}
