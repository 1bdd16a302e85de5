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
	"strings"
	"unicode"
	"unicode/utf8"
)

// DecodeHex converts a transmission's hexadecimal digits into bytes, two digits
// per byte with the high nibble first. Surrounding whitespace is ignored and
// digits may be either case. An odd trailing digit fills the high nibble of a
// final byte whose low nibble is zero.
func DecodeHex(s string) ([]byte, error) {
	buf, _, err := decodeHex(s)
	return buf, err
}

// NewHexReader decodes s and returns a BitReader over the result. The zero
// nibble padding an odd-length transmission is not readable.
func NewHexReader(s string) (*BitReader, error) {
	buf, size, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return &BitReader{buf: buf, size: size}, nil
}

// decodeHex returns the decoded bytes and the number of significant bits.
func decodeHex(s string) ([]byte, uint64, error) {
	lead := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	s = strings.TrimSpace(s)

	buf := make([]byte, (len(s)+1)/2)
	for i := 0; i < len(s); i++ {
		n, ok := fromHex(s[i])
		if !ok {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, 0, &InvalidCharacterError{Char: r, Offset: uint64(lead + i)}
		}

		if i%2 == 0 {
			buf[i/2] = n << 4
		} else {
			buf[i/2] |= n
		}
	}

	return buf, uint64(len(s)) * 4, nil
}

func fromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
