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
	"math"

	"github.com/pkg/errors"
)

// DecoderOpts defines a set of bit flag options for decoding transmissions.
type DecoderOpts uint8

const (
	// DecoderStrictPadding requires every bit following the outermost packet to
	// be zero. By default trailing bits are ignored.
	DecoderStrictPadding DecoderOpts = 1
)

// Decode decodes a hexadecimal transmission into its outermost packet.
func Decode(s string) (Packet, error) {
	return DecodeOpts(s, 0)
}

// DecodeOpts decodes a hexadecimal transmission with the given options.
func DecodeOpts(s string, opts DecoderOpts) (Packet, error) {
	r, err := NewHexReader(s)
	if err != nil {
		return Packet{}, errors.Wrap(err, "decode transmission")
	}
	return decode(r, opts)
}

// DecodeBytes decodes a transmission that has already been converted to bytes.
func DecodeBytes(buf []byte, opts DecoderOpts) (Packet, error) {
	return decode(NewBitReader(buf), opts)
}

func decode(r *BitReader, opts DecoderOpts) (Packet, error) {
	p, err := Parse(r)
	if err != nil {
		return Packet{}, errors.Wrap(err, "decode transmission")
	}

	if opts&DecoderStrictPadding != 0 {
		if err := checkPadding(r); err != nil {
			return Packet{}, errors.Wrap(err, "decode transmission")
		}
	}

	return p, nil
}

// checkPadding consumes the rest of r, failing on any set bit.
func checkPadding(r *BitReader) error {
	for r.Remaining() > 0 {
		off := r.BitsConsumed()

		n := uint(64)
		if r.Remaining() < 64 {
			n = uint(r.Remaining())
		}

		v, err := r.ReadUint(n)
		if err != nil {
			return err
		}
		if v != 0 {
			return &MalformedLengthError{"non-zero bits after the outermost packet", off}
		}
	}
	return nil
}

// Parse reads a single packet, and everything nested within it, from r. On
// success r is left positioned on the first bit after the packet.
func Parse(r *BitReader) (Packet, error) {
	p := parser{r: r}
	return p.parsePacket(math.MaxUint64)
}

// A parser reads packets from a BitReader. Every read is checked against a
// limit: the end of the innermost enclosing bit-length region.
type parser struct {
	r *BitReader
}

func (p *parser) read(n uint, limit uint64) (uint64, error) {
	pos := p.r.BitsConsumed()
	if pos+uint64(n) > limit {
		msg := fmt.Sprintf("reading %v bits crosses the sub-packet boundary at %v", n, limit)
		return 0, &MalformedLengthError{msg, pos}
	}
	return p.r.ReadUint(n)
}

func (p *parser) parsePacket(limit uint64) (Packet, error) {
	version, err := p.read(versionBits, limit)
	if err != nil {
		return Packet{}, err
	}

	off := p.r.BitsConsumed()
	tag, err := p.read(typeBits, limit)
	if err != nil {
		return Packet{}, err
	}

	switch t := PacketType(tag); {
	case t == TypeLiteral:
		v, err := p.parseLiteral(limit)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Version: uint8(version), Kind: Literal{Value: v}}, nil

	case IsOperator(t):
		children, err := p.parseChildren(t, limit)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Version: uint8(version), Kind: Operator{Op: t, Children: children}}, nil

	default:
		return Packet{}, &UnknownPacketTypeError{Type: uint8(tag), Offset: off}
	}
}

// parseLiteral reads 5-bit groups until one has a clear continuation bit.
func (p *parser) parseLiteral(limit uint64) (uint64, error) {
	var v uint64
	for {
		off := p.r.BitsConsumed()

		more, err := p.read(1, limit)
		if err != nil {
			return 0, err
		}
		group, err := p.read(groupBits, limit)
		if err != nil {
			return 0, err
		}

		if v>>(64-groupBits) != 0 {
			return 0, &MalformedLengthError{"literal does not fit in 64 bits", off}
		}
		v = v<<groupBits | group

		if more == 0 {
			return v, nil
		}
	}
}

func (p *parser) parseChildren(t PacketType, limit uint64) ([]Packet, error) {
	off := p.r.BitsConsumed()
	mode, err := p.read(1, limit)
	if err != nil {
		return nil, err
	}

	var children []Packet
	switch LengthMode(mode) {
	case LengthModeCount:
		n, err := p.read(countBits, limit)
		if err != nil {
			return nil, err
		}

		children = make([]Packet, 0, n)
		for i := uint64(0); i < n; i++ {
			child, err := p.parsePacket(limit)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

	case LengthModeBits:
		total, err := p.read(totalBits, limit)
		if err != nil {
			return nil, err
		}

		start := p.r.BitsConsumed()
		end := start + total
		if end > limit {
			msg := fmt.Sprintf("sub-packets declare %v bits but only %v remain in the enclosing packet", total, limit-start)
			return nil, &MalformedLengthError{msg, start}
		}

		for p.r.BitsConsumed() < end {
			if left := end - p.r.BitsConsumed(); left < minPacketBits {
				msg := fmt.Sprintf("%v bits left over after sub-packets, too few for another packet", left)
				return nil, &MalformedLengthError{msg, p.r.BitsConsumed()}
			}

			child, err := p.parsePacket(end)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		if used := p.r.BitsConsumed() - start; used != total {
			msg := fmt.Sprintf("sub-packets used %v bits, declared %v", used, total)
			return nil, &MalformedLengthError{msg, start}
		}
	}

	switch {
	case len(children) == 0:
		return nil, &MalformedLengthError{fmt.Sprintf("%v has no sub-packets", t), off}
	case IsComparison(t) && len(children) != 2:
		msg := fmt.Sprintf("%v needs 2 sub-packets, found %v", t, len(children))
		return nil, &MalformedLengthError{msg, off}
	}

	return children, nil
}
