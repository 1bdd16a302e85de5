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

// A UsageError is returned when you use a BitReader, BitWriter or encoder in an
// inappropriate way.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("bits: usage error in %v: %v", e.API, e.Msg)
}

// An InvalidCharacterError is returned when a transmission contains a character
// that is not a hexadecimal digit. Offset counts characters, not bits.
type InvalidCharacterError struct {
	Char   rune
	Offset uint64
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("bits: invalid character %q (offset %v)", e.Char, e.Offset)
}

// An UnexpectedEOFError is returned when a read asks for more bits than remain
// in the transmission.
type UnexpectedEOFError struct {
	Want   uint64
	Offset uint64
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("bits: unexpected end of input reading %v bits (offset %v)", e.Want, e.Offset)
}

// An UnknownPacketTypeError is returned when a packet's type tag is outside the
// defined set.
type UnknownPacketTypeError struct {
	Type   uint8
	Offset uint64
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("bits: unknown packet type %v (offset %v)", e.Type, e.Offset)
}

// A MalformedLengthError is returned when a packet's declared lengths disagree
// with its contents: sub-packets that overrun or underrun their declared bit
// length, operators with the wrong number of sub-packets, literals too wide for
// 64 bits, or reads into the padding of an odd-length transmission.
type MalformedLengthError struct {
	Msg    string
	Offset uint64
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("bits: malformed length: %v (offset %v)", e.Msg, e.Offset)
}
