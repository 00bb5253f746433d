/*
Copyright 2011-2026 Frederic Langlet
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

package eliaspack

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/jeffwigger/eliaspack/codec"
	"github.com/jeffwigger/eliaspack/decoder"
	"github.com/jeffwigger/eliaspack/encoder"
	"github.com/jeffwigger/eliaspack/planner"
	"github.com/jeffwigger/eliaspack/transform"
)

// Options configures a Codec. The zero value is valid: ThreadCount
// defaults to runtime.GOMAXPROCS(0), and every other field defaults to
// off.
type Options[T transform.Integer] struct {
	// Offset, when non-zero, is added to every element before encoding
	// and subtracted back after decoding.
	Offset int64

	// MapNegativeNumbers enables the signed-to-natural zig-zag
	// transform, applied after Offset on encode and undone before it
	// on decode.
	MapNegativeNumbers bool

	// ThreadCount bounds how many goroutines the planner and encoder
	// use. Values below 1 fall back to runtime.GOMAXPROCS(0).
	ThreadCount int

	// Listeners receive planning/encoding/decoding stage events. A
	// panicking listener cannot crash a Compress or Decompress call;
	// notifyListeners recovers exactly as kanzi-go's does.
	Listeners []Listener

	// Trace, when set, is intended for single-threaded debugging of
	// the bit-level writer and reader directly: wrap a bitstream.Writer
	// or bitstream.Reader with bitstream.NewTraceWriter/NewTraceReader.
	// It is not threaded through Compress/Decompress's parallel encode
	// path, since doing so would force every Coder call through an
	// interface in the hot loop.
	Trace io.Writer
}

// Codec compresses and decompresses slices of T using one Elias code.
type Codec[T transform.Integer] struct {
	coder codec.Coder[T]
	opts  Options[T]
}

func newCodec[T transform.Integer](c codec.Coder[T], opts Options[T]) *Codec[T] {
	if opts.ThreadCount < 1 {
		opts.ThreadCount = runtime.GOMAXPROCS(0)
	}
	return &Codec[T]{coder: c, opts: opts}
}

// NewGammaCodec returns a Codec using Elias gamma.
func NewGammaCodec[T transform.Integer](opts Options[T]) *Codec[T] {
	return newCodec[T](codec.NewGamma[T](), opts)
}

// NewDeltaCodec returns a Codec using Elias delta.
func NewDeltaCodec[T transform.Integer](opts Options[T]) *Codec[T] {
	return newCodec[T](codec.NewDelta[T](), opts)
}

// NewOmegaCodec returns a Codec using Elias omega.
func NewOmegaCodec[T transform.Integer](opts Options[T]) *Codec[T] {
	return newCodec[T](codec.NewOmega[T](), opts)
}

// New dispatches a codec.CodeType known only at runtime to the matching
// Codec, mirroring kanzi-go's EntropyCodecFactory switch-on-constant
// shape. Prefer NewGammaCodec/NewDeltaCodec/NewOmegaCodec when the code
// is known at compile time.
func New[T transform.Integer](t codec.CodeType, opts Options[T]) (*Codec[T], error) {
	c, err := codec.New[T](t)
	if err != nil {
		return nil, fmt.Errorf("eliaspack: %w", err)
	}
	return newCodec[T](c, opts), nil
}

// CompressedLength returns the number of bits Compress would write for
// arr, without allocating the output buffer.
func (c *Codec[T]) CompressedLength(arr []T) uint64 {
	working := c.prepare(arr)
	plan, err := planner.Build[T](working, c.coder, c.opts.ThreadCount)
	if err != nil {
		return 0
	}
	return plan.TotalBits()
}

// Compress encodes arr and returns the packed bytes along with their
// length. It never mutates arr. On failure (for example a non-positive
// element after the configured transforms) it returns (nil, 0); it
// never panics.
func (c *Codec[T]) Compress(arr []T) ([]byte, int) {
	working := c.prepare(arr)

	c.notify(EvtPlanStart, 0, len(working))
	plan, err := planner.Build[T](working, c.coder, c.opts.ThreadCount)
	c.notify(EvtPlanEnd, 0, len(working))
	if err != nil {
		return nil, 0
	}

	c.notify(EvtEncodeStart, 0, len(working))
	packed, err := encoder.Encode[T](working, c.coder, plan)
	c.notify(EvtEncodeEnd, int64(len(packed)), len(working))
	if err != nil {
		return nil, 0
	}

	return packed, len(packed)
}

// Decompress reads elementCount values from the first byteLength bytes
// of data and returns them with the inverse of the configured
// transforms applied. Returns nil if byteLength is out of range.
func (c *Codec[T]) Decompress(data []byte, byteLength, elementCount int) []T {
	if byteLength < 0 || byteLength > len(data) || elementCount < 0 {
		return nil
	}
	buf := data[:byteLength]

	c.notify(EvtDecodeStart, int64(byteLength), elementCount)
	out := decoder.Decode[T](buf, elementCount, c.coder)
	c.notify(EvtDecodeEnd, int64(byteLength), len(out))

	if c.opts.MapNegativeNumbers {
		transform.InverseNatural(out)
	}
	if c.opts.Offset != 0 {
		transform.InverseOffset(out, c.opts.Offset)
	}
	return out
}

// prepare clones arr and applies the configured forward transforms, in
// the order Offset then MapNegativeNumbers, so Decompress can undo
// them in the reverse order.
func (c *Codec[T]) prepare(arr []T) []T {
	working := transform.Clone(arr)
	if c.opts.Offset != 0 {
		transform.ForwardOffset(working, c.opts.Offset)
	}
	if c.opts.MapNegativeNumbers {
		transform.ForwardNatural(working)
	}
	return working
}

func (c *Codec[T]) notify(evtType int, size int64, elements int) {
	if len(c.opts.Listeners) == 0 {
		return
	}
	evt := NewEvent(evtType, size, elements, time.Time{})
	notifyListeners(c.opts.Listeners, evt)
}

// notifyListeners calls every listener, recovering from a panicking
// listener so it cannot take down the caller's Compress/Decompress.
func notifyListeners(listeners []Listener, evt *Event) {
	defer func() {
		if r := recover(); r != nil {
			// Ignore panics in listeners.
		}
	}()

	for _, l := range listeners {
		l.ProcessEvent(evt)
	}
}
