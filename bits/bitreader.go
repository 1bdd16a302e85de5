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

// A BitReader is a forward-only cursor over a byte buffer that reads unsigned
// integers of 1 to 64 bits, most significant bit first.
type BitReader struct {
	buf  []byte
	pos  uint64
	size uint64
}

// NewBitReader returns a BitReader over every bit of buf. The buffer must not be
// modified while the reader is in use.
func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf, size: uint64(len(buf)) * 8}
}

// ReadUint reads the next n bits as an unsigned integer.
func (r *BitReader) ReadUint(n uint) (uint64, error) {
	if n == 0 || n > 64 {
		return 0, &UsageError{"BitReader.ReadUint", fmt.Sprintf("cannot read %v bits", n)}
	}

	end := r.pos + uint64(n)
	if end > r.size {
		if end <= uint64(len(r.buf))*8 {
			return 0, &MalformedLengthError{"read into transmission padding", r.pos}
		}
		return 0, &UnexpectedEOFError{Want: uint64(n), Offset: r.pos}
	}

	var v uint64
	for r.pos < end {
		avail := 8 - r.pos%8
		take := end - r.pos
		if take > avail {
			take = avail
		}

		chunk := (r.buf[r.pos/8] >> (avail - take)) & (1<<take - 1)
		v = v<<take | uint64(chunk)
		r.pos += take
	}

	return v, nil
}

// ReadBit reads a single bit.
func (r *BitReader) ReadBit() (bool, error) {
	v, err := r.ReadUint(1)
	return v == 1, err
}

// BitsConsumed returns the number of bits read so far.
func (r *BitReader) BitsConsumed() uint64 {
	return r.pos
}

// Len returns the number of readable bits in the underlying buffer.
func (r *BitReader) Len() uint64 {
	return r.size
}

// Remaining returns the number of bits left to read.
func (r *BitReader) Remaining() uint64 {
	return r.size - r.pos
}
