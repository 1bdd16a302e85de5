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

import "fmt"

// A BitWriter accumulates unsigned integers of 1 to 64 bits, most significant
// bit first, into a byte buffer. The final byte is zero-padded.
//
// Like the other writers in this package, a BitWriter remembers the first error
// it encounters and returns it from every later call, so callers may check
// only Err once they're done.
type BitWriter struct {
	buf []byte
	pos uint64
	err error
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

// WriteUint writes the low n bits of v. It is an error for v to need more than
// n bits.
func (w *BitWriter) WriteUint(v uint64, n uint) error {
	if w.err != nil {
		return w.err
	}
	if n == 0 || n > 64 {
		w.err = &UsageError{"BitWriter.WriteUint", fmt.Sprintf("cannot write %v bits", n)}
		return w.err
	}
	if n < 64 && v>>n != 0 {
		w.err = &UsageError{"BitWriter.WriteUint", fmt.Sprintf("%v does not fit in %v bits", v, n)}
		return w.err
	}

	for i := n; i > 0; i-- {
		w.appendBit(byte(v>>(i-1)) & 1)
	}
	return nil
}

// WriteBit writes a single bit.
func (w *BitWriter) WriteBit(b bool) error {
	if b {
		return w.WriteUint(1, 1)
	}
	return w.WriteUint(0, 1)
}

// WriteBits appends everything written to o.
func (w *BitWriter) WriteBits(o *BitWriter) error {
	if w.err != nil {
		return w.err
	}
	if o.err != nil {
		w.err = o.err
		return w.err
	}

	for i := uint64(0); i < o.pos; i++ {
		w.appendBit((o.buf[i/8] >> (7 - i%8)) & 1)
	}
	return nil
}

func (w *BitWriter) appendBit(bit byte) {
	if w.pos%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	w.buf[len(w.buf)-1] |= bit << (7 - w.pos%8)
	w.pos++
}

// Len returns the number of bits written.
func (w *BitWriter) Len() uint64 {
	return w.pos
}

// Bytes returns the written bits, zero-padded to a whole number of bytes.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// Hex returns Bytes as upper-case hexadecimal digits.
func (w *BitWriter) Hex() string {
	return fmt.Sprintf("%X", w.buf)
}

// Err returns the first error encountered while writing, if any.
func (w *BitWriter) Err() error {
	return w.err
}
