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
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	test := func(in string, expected []byte) {
		t.Run(in, func(t *testing.T) {
			actual, err := DecodeHex(in)
			require.NoError(t, err)
			assert.Equal(t, expected, actual)
		})
	}

	test("", []byte{})
	test("D2FE28", []byte{0xD2, 0xFE, 0x28})
	test("d2fe28", []byte{0xD2, 0xFE, 0x28})
	test("0aF9", []byte{0x0A, 0xF9})
	test("  D2FE28\n", []byte{0xD2, 0xFE, 0x28})
	test("D2FE2", []byte{0xD2, 0xFE, 0x20})
	test("7", []byte{0x70})
}

func TestDecodeHexInvalidCharacter(t *testing.T) {
	test := func(in string, char rune, offset uint64) {
		t.Run(in, func(t *testing.T) {
			_, err := DecodeHex(in)
			require.Error(t, err)

			ice, ok := err.(*InvalidCharacterError)
			require.True(t, ok, "expected an InvalidCharacterError, got %T", err)
			assert.Equal(t, char, ice.Char)
			assert.Equal(t, offset, ice.Offset)
		})
	}

	test("D2FG28", 'G', 3)
	test("  xD2", 'x', 2)
	test("D2 FE", ' ', 2)
	test("D2FE-", '-', 4)
	test("00é0", 'é', 2)
}

func TestDecodeHexEvenLength(t *testing.T) {
	const digits = "0123456789abcdefABCDEF"
	rng := rand.New(rand.NewSource(16))

	for i := 0; i < 100; i++ {
		n := 2 * rng.Intn(64)
		sb := strings.Builder{}
		for j := 0; j < n; j++ {
			sb.WriteByte(digits[rng.Intn(len(digits))])
		}

		buf, err := DecodeHex(sb.String())
		require.NoError(t, err)
		assert.Len(t, buf, n/2, sb.String())
	}
}

func TestNewHexReader(t *testing.T) {
	r, err := NewHexReader("D2FE2")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), r.Len())

	r, err = NewHexReader(" D2FE28 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(24), r.Len())

	_, err = NewHexReader("D2FE2Z")
	assert.IsType(t, &InvalidCharacterError{}, err)
}
