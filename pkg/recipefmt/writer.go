// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"fmt"
	"io"
)

type writer struct {
	writer    io.Writer
	lastChunk writerChunk
}

// writerChunk is one emitted piece of a line. A chunk that allows
// inlining (a bare "-" sequence marker) holds the line open so the
// next chunk can continue it.
type writerChunk struct {
	Content        string
	Indent         string
	AllowsInlining bool
	InliningSpacer string
	CanBeInlined   bool
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

func (w *writer) AddContent(chunk writerChunk) {
	defer func() {
		w.lastChunk = chunk
	}()

	if w.lastChunk.AllowsInlining {
		if chunk.CanBeInlined {
			fmt.Fprintf(w.writer, "%s", w.lastChunk.InliningSpacer)
		} else {
			fmt.Fprintf(w.writer, "\n%s", chunk.Indent)
		}
	} else {
		fmt.Fprintf(w.writer, "%s", chunk.Indent)
	}

	fmt.Fprintf(w.writer, "%s", chunk.Content)

	if !chunk.AllowsInlining {
		fmt.Fprintf(w.writer, "\n")
	}
}
