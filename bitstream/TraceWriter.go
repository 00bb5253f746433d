/*
Copyright 2011-2024 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// TraceWriter decorates a Writer for debugging: every WriteBits call is
// logged to the supplied io.Writer before being forwarded to the
// delegate. There is no dependency on a logging library here, in
// keeping with the teacher codebase's own convention of piping
// diagnostics straight to a plain io.Writer instead of a structured
// logger.
type TraceWriter struct {
	delegate *Writer
	out      io.Writer
	chunk    int
}

// NewTraceWriter wraps w, logging to out. chunk identifies the chunk
// this writer serves, so traces from concurrent chunks stay distinguishable.
func NewTraceWriter(w *Writer, out io.Writer, chunk int) (*TraceWriter, error) {
	if w == nil {
		return nil, errors.New("the delegate cannot be nil")
	}

	if out == nil {
		return nil, errors.New("the writer cannot be nil")
	}

	return &TraceWriter{delegate: w, out: out, chunk: chunk}, nil
}

// WriteBit logs then delegates.
func (t *TraceWriter) WriteBit(bit byte) {
	fmt.Fprintf(t.out, "chunk %d: bit %d\n", t.chunk, bit&1)
	t.delegate.WriteBit(bit)
}

// WriteZeros logs then delegates.
func (t *TraceWriter) WriteZeros(n uint) {
	fmt.Fprintf(t.out, "chunk %d: %d zero bits\n", t.chunk, n)
	t.delegate.WriteZeros(n)
}

// WriteBits logs then delegates.
func (t *TraceWriter) WriteBits(value uint64, n uint) {
	fmt.Fprintf(t.out, "chunk %d: %0*b (%d bits)\n", t.chunk, n, value, n)
	t.delegate.WriteBits(value, n)
}

// Flush logs then delegates.
func (t *TraceWriter) Flush() {
	fmt.Fprintf(t.out, "chunk %d: flush\n", t.chunk)
	t.delegate.Flush()
}
