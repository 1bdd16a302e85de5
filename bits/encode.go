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

	"github.com/pkg/errors"
)

// Encoding in bit-length mode is a bit tricky: an operator's sub-packets are
// preceded by their total length, which isn't known until they've been
// written. Sub-packets are therefore written into their own BitWriter first
// and copied into the parent once their length is known.

// EncoderOpts defines a set of bit flag options for encoding packets.
type EncoderOpts uint8

const (
	// EncoderCountMode bounds every operator's sub-packets by count rather than
	// by total length in bits.
	EncoderCountMode EncoderOpts = 1
)

// Encode encodes p, bounding sub-packets by their length in bits.
func Encode(p Packet) ([]byte, error) {
	return EncodeOpts(p, 0)
}

// EncodeOpts encodes p with the given options.
func EncodeOpts(p Packet, opts EncoderOpts) ([]byte, error) {
	w := NewBitWriter()
	if err := encodePacket(w, p, opts); err != nil {
		return nil, errors.Wrap(err, "encode packet")
	}
	return w.Bytes(), nil
}

// EncodeHex encodes p as an upper-case hexadecimal transmission.
func EncodeHex(p Packet, opts EncoderOpts) (string, error) {
	w := NewBitWriter()
	if err := encodePacket(w, p, opts); err != nil {
		return "", errors.Wrap(err, "encode packet")
	}
	return w.Hex(), nil
}

func encodePacket(w *BitWriter, p Packet, opts EncoderOpts) error {
	if p.Version > maxVersion {
		return &UsageError{"Encode", fmt.Sprintf("version %v does not fit in %v bits", p.Version, versionBits)}
	}
	w.WriteUint(uint64(p.Version), versionBits)

	switch k := p.Kind.(type) {
	case Literal:
		w.WriteUint(uint64(TypeLiteral), typeBits)
		encodeLiteral(w, k.Value)

	case Operator:
		if err := checkOperator(k); err != nil {
			return err
		}
		w.WriteUint(uint64(k.Op), typeBits)

		if opts&EncoderCountMode != 0 {
			if len(k.Children) > maxCount {
				return &UsageError{"Encode", fmt.Sprintf("%v has %v sub-packets, more than %v", k.Op, len(k.Children), maxCount)}
			}
			w.WriteUint(uint64(LengthModeCount), 1)
			w.WriteUint(uint64(len(k.Children)), countBits)
			for _, c := range k.Children {
				if err := encodePacket(w, c, opts); err != nil {
					return err
				}
			}
			break
		}

		sub := NewBitWriter()
		for _, c := range k.Children {
			if err := encodePacket(sub, c, opts); err != nil {
				return err
			}
		}
		if sub.Len() > maxTotal {
			return &UsageError{"Encode", fmt.Sprintf("%v sub-packets take %v bits, more than %v", k.Op, sub.Len(), maxTotal)}
		}

		w.WriteUint(uint64(LengthModeBits), 1)
		w.WriteUint(sub.Len(), totalBits)
		w.WriteBits(sub)

	default:
		return &UsageError{"Encode", fmt.Sprintf("unknown packet kind %T", p.Kind)}
	}

	return w.Err()
}

func checkOperator(o Operator) error {
	switch {
	case !IsOperator(o.Op):
		return &UsageError{"Encode", fmt.Sprintf("%v is not an operator", o.Op)}
	case len(o.Children) == 0:
		return &UsageError{"Encode", fmt.Sprintf("%v has no sub-packets", o.Op)}
	case IsComparison(o.Op) && len(o.Children) != 2:
		return &UsageError{"Encode", fmt.Sprintf("%v needs 2 sub-packets, found %v", o.Op, len(o.Children))}
	}
	return nil
}

// encodeLiteral writes v as 5-bit groups, most significant nibble first, with
// the continuation bit set on all but the last.
func encodeLiteral(w *BitWriter, v uint64) {
	for i := literalGroups(v); i > 0; i-- {
		w.WriteBit(i > 1)
		w.WriteUint((v>>(groupBits*(i-1)))&0xF, groupBits)
	}
}

// literalGroups pre-calculates the number of 4-bit groups needed to hold v.
func literalGroups(v uint64) uint {
	n := uint(1)
	v >>= groupBits

	for v > 0 {
		n++
		v >>= groupBits
	}

	return n
}
