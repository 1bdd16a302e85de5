/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package bits

import (
	"fmt"
	"io"
	"strings"
)

// TextWriterOpts defines a set of bit flag options for text writers.
type TextWriterOpts uint8

const (
	// TextWriterQuietFinish disables emitting a newline after each packet.
	TextWriterQuietFinish TextWriterOpts = 1

	// TextWriterPretty enables pretty-printing mode: each sub-packet on its own
	// indented line.
	TextWriterPretty TextWriterOpts = 2
)

// A TextWriter writes packets as human-readable s-expressions. Literals are
// written as version:value and operators as version:(op sub-packets...), e.g.
//
//	v1:(lt v6:10 v2:20)
//
// A TextWriter remembers the first error it encounters and no-ops subsequent
// calls.
type TextWriter struct {
	out  io.Writer
	opts TextWriterOpts
	err  error
}

// NewTextWriter returns a new text writer.
func NewTextWriter(out io.Writer) *TextWriter {
	return NewTextWriterOpts(out, 0)
}

// NewTextWriterOpts returns a new text writer with the given options.
func NewTextWriterOpts(out io.Writer, opts TextWriterOpts) *TextWriter {
	return &TextWriter{out: out, opts: opts}
}

// WritePacket writes p and everything nested within it.
func (w *TextWriter) WritePacket(p Packet) error {
	if w.err != nil {
		return w.err
	}

	w.writePacket(p, 0)
	if w.opts&TextWriterQuietFinish == 0 {
		w.write("\n")
	}
	return w.err
}

func (w *TextWriter) writePacket(p Packet, depth int) {
	w.write(fmt.Sprintf("v%d:", p.Version))

	switch k := p.Kind.(type) {
	case Literal:
		w.write(fmt.Sprintf("%d", k.Value))

	case Operator:
		w.write("(" + k.Op.String())
		for _, c := range k.Children {
			if w.opts&TextWriterPretty != 0 {
				w.write("\n" + strings.Repeat("  ", depth+1))
			} else {
				w.write(" ")
			}
			w.writePacket(c, depth+1)
		}
		w.write(")")

	default:
		if w.err == nil {
			w.err = &UsageError{"TextWriter.WritePacket", fmt.Sprintf("unknown packet kind %T", p.Kind)}
		}
	}
}

func (w *TextWriter) write(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = err
	}
}
