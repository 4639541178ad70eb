// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package recipefmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/prowarehouse-nl/recipemaker/pkg/orderedmap"
)

// Printer emits an ordered-map tree as block-style YAML. Key order is
// reproduced verbatim and lines are never wrapped, whatever their
// length; the stock yaml emitters offer neither guarantee. Multiline
// strings come out as single-line double-quoted scalars; the cosmetic
// pass rewrites those into block literals.
type Printer struct{}

func NewPrinter() Printer {
	return Printer{}
}

func (p Printer) Print(w io.Writer, val interface{}) {
	p.print(val, whitespace{}, newWriter(w))
}

func (p Printer) PrintStr(val interface{}) string {
	buf := new(bytes.Buffer)
	p.print(val, whitespace{}, newWriter(buf))
	return buf.String()
}

func (p Printer) print(val interface{}, ws whitespace, writer *writer) {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		typedVal.Iterate(func(k string, v interface{}) {
			if leaf, ok := p.leafString(v); ok {
				writer.AddContent(writerChunk{
					Indent:       ws.Indent,
					Content:      fmt.Sprintf("%s: %s", k, leaf),
					CanBeInlined: true,
				})
			} else {
				writer.AddContent(writerChunk{
					Indent:       ws.Indent,
					Content:      k + ":",
					CanBeInlined: true,
				})
				// sequences are indentless: the dash sits at the
				// parent key's column
				childWs := ws.NewIndented()
				if _, isSeq := v.([]interface{}); isSeq {
					childWs = ws
				}
				p.print(v, childWs, writer)
			}
		})

	case []interface{}:
		for _, item := range typedVal {
			if leaf, ok := p.leafString(item); ok {
				writer.AddContent(writerChunk{
					Indent:       ws.Indent,
					Content:      "- " + leaf,
					CanBeInlined: true,
				})
			} else {
				writer.AddContent(writerChunk{
					Indent:         ws.Indent,
					Content:        "-",
					AllowsInlining: true,
					InliningSpacer: " ",
					CanBeInlined:   true,
				})
				p.print(item, ws.NewIndented(), writer)
			}
		}

	default:
		leaf, ok := p.leafString(typedVal)
		if !ok {
			panic(fmt.Sprintf("Expected leaf, but was %T", typedVal))
		}
		writer.AddContent(writerChunk{
			Indent:       ws.Indent,
			Content:      leaf,
			CanBeInlined: true,
		})
	}
}

// leafString renders scalars (and empty collections, which have no
// block form) to their YAML representation.
func (p Printer) leafString(val interface{}) (string, bool) {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		if typedVal.Len() == 0 {
			return "{}", true
		}
		return "", false

	case []interface{}:
		if len(typedVal) == 0 {
			return "[]", true
		}
		return "", false

	case nil:
		return "null", true

	case string:
		return yamlScalar(typedVal), true

	case bool:
		if typedVal {
			return "true", true
		}
		return "false", true

	default:
		return fmt.Sprintf("%v", typedVal), true
	}
}

type whitespace struct {
	Indent string
}

func (w whitespace) NewIndented() whitespace {
	const indentLvl = "  "
	return whitespace{Indent: w.Indent + indentLvl}
}
