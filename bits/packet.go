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
	"strings"
)

// Field widths, in bits, of the packet header and payloads.
const (
	versionBits = 3
	typeBits    = 3
	groupBits   = 4
	countBits   = 11
	totalBits   = 15

	// A packet is never shorter than a header plus one literal group.
	minPacketBits = versionBits + typeBits + 1 + groupBits

	maxVersion = 1<<versionBits - 1
	maxCount   = 1<<countBits - 1
	maxTotal   = 1<<totalBits - 1
)

// A PacketType is the 3-bit type tag of a packet.
type PacketType uint8

const (
	// TypeSum sums its sub-packets.
	TypeSum PacketType = iota

	// TypeProduct multiplies its sub-packets.
	TypeProduct

	// TypeMinimum takes the smallest of its sub-packets.
	TypeMinimum

	// TypeMaximum takes the largest of its sub-packets.
	TypeMaximum

	// TypeLiteral is a literal value rather than an operator.
	TypeLiteral

	// TypeGreaterThan is 1 if its first sub-packet is greater than its second.
	TypeGreaterThan

	// TypeLessThan is 1 if its first sub-packet is less than its second.
	TypeLessThan

	// TypeEqualTo is 1 if its two sub-packets are equal.
	TypeEqualTo
)

// String implements fmt.Stringer for PacketType.
func (t PacketType) String() string {
	switch t {
	case TypeSum:
		return "sum"
	case TypeProduct:
		return "product"
	case TypeMinimum:
		return "min"
	case TypeMaximum:
		return "max"
	case TypeLiteral:
		return "literal"
	case TypeGreaterThan:
		return "gt"
	case TypeLessThan:
		return "lt"
	case TypeEqualTo:
		return "eq"
	default:
		return fmt.Sprintf("<unknown type %v>", uint8(t))
	}
}

// IsOperator determines if the type is an operator type.
func IsOperator(t PacketType) bool {
	return t <= TypeEqualTo && t != TypeLiteral
}

// IsComparison determines if the type is a comparison, which takes exactly two
// sub-packets.
func IsComparison(t PacketType) bool {
	return TypeGreaterThan <= t && t <= TypeEqualTo
}

// A LengthMode selects how an operator bounds its sub-packets.
type LengthMode uint8

const (
	// LengthModeBits bounds sub-packets by their total length in bits.
	LengthModeBits LengthMode = iota

	// LengthModeCount bounds sub-packets by their number.
	LengthModeCount
)

// String implements fmt.Stringer for LengthMode.
func (m LengthMode) String() string {
	switch m {
	case LengthModeBits:
		return "bits"
	case LengthModeCount:
		return "count"
	default:
		return fmt.Sprintf("<unknown length mode %v>", uint8(m))
	}
}

// A Packet is one node of a decoded transmission.
type Packet struct {
	Version uint8
	Kind    Kind
}

// A Kind is the payload of a packet: either a Literal or an Operator.
type Kind interface {
	// Type returns the packet type tag the kind was decoded from.
	Type() PacketType

	isKind()
}

// A Literal is a packet holding a single value.
type Literal struct {
	Value uint64
}

// Type satisfies Kind.
func (Literal) Type() PacketType { return TypeLiteral }

func (Literal) isKind() {}

// An Operator is a packet combining the values of its sub-packets.
type Operator struct {
	Op       PacketType
	Children []Packet
}

// Type satisfies Kind.
func (o Operator) Type() PacketType { return o.Op }

func (Operator) isKind() {}

// Type returns the packet's type tag.
func (p Packet) Type() PacketType {
	return p.Kind.Type()
}

// Children returns the sub-packets of an operator, or nil for a literal.
func (p Packet) Children() []Packet {
	if op, ok := p.Kind.(Operator); ok {
		return op.Children
	}
	return nil
}

// Count returns the number of packets in the tree rooted at p.
func (p Packet) Count() int {
	n := 1
	for _, c := range p.Children() {
		n += c.Count()
	}
	return n
}

// VersionSum is shorthand for VersionSum(p).
func (p Packet) VersionSum() uint64 {
	return VersionSum(p)
}

// Value is shorthand for Value(p).
func (p Packet) Value() uint64 {
	return Value(p)
}

// String renders the packet on a single line, e.g. "v1:(lt v6:10 v2:20)".
func (p Packet) String() string {
	buf := strings.Builder{}
	w := NewTextWriterOpts(&buf, TextWriterQuietFinish)
	if err := w.WritePacket(p); err != nil {
		return fmt.Sprintf("<invalid packet: %v>", err)
	}
	return buf.String()
}
