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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionSum(t *testing.T) {
	test := func(hex string, expected uint64) {
		t.Run(hex, func(t *testing.T) {
			p, err := Decode(hex)
			require.NoError(t, err)
			assert.Equal(t, expected, VersionSum(p))
			assert.Equal(t, expected, p.VersionSum())
		})
	}

	test("D2FE28", 6)
	test("38006F45291200", 9)
	test("EE00D40C823060", 14)
	test("8A004A801A8002F478", 16)
	test("620080001611562C8802118E34", 12)
	test("C0015000016115A2E0802F182340", 23)
	test("A0016C880162017C3686B18A3D4780", 31)
}

func TestValue(t *testing.T) {
	test := func(hex string, expected uint64) {
		t.Run(hex, func(t *testing.T) {
			p, err := Decode(hex)
			require.NoError(t, err)
			assert.Equal(t, expected, Value(p))
			assert.Equal(t, expected, p.Value())
		})
	}

	test("D2FE28", 2021)
	test("38006F45291200", 1)
	test("EE00D40C823060", 3)
	test("C200B40A82", 3)
	test("04005AC33890", 54)
	test("880086C3E88112", 7)
	test("CE00C43D881120", 9)
	test("D8005AC2A8F0", 1)
	test("F600BC2D8F", 0)
	test("9C005AC2F8F0", 0)
	test("9C0141080250320F1802104A08", 1)
}

func TestValueOperators(t *testing.T) {
	tests := []struct {
		name     string
		packet   Packet
		expected uint64
	}{
		{"sum of one", op(0, TypeSum, lit(0, 7)), 7},
		{"sum", op(0, TypeSum, lit(0, 1), lit(0, 2), lit(0, 3)), 6},
		{"sum wraps", op(0, TypeSum, lit(0, 0xFFFFFFFFFFFFFFFF), lit(0, 2)), 1},
		{"product of one", op(0, TypeProduct, lit(0, 9)), 9},
		{"product", op(0, TypeProduct, lit(0, 6), lit(0, 9)), 54},
		{"product with zero", op(0, TypeProduct, lit(0, 6), lit(0, 0)), 0},
		{"min", op(0, TypeMinimum, lit(0, 7), lit(0, 8), lit(0, 9)), 7},
		{"max", op(0, TypeMaximum, lit(0, 7), lit(0, 8), lit(0, 9)), 9},
		{"gt true", op(0, TypeGreaterThan, lit(0, 15), lit(0, 5)), 1},
		{"gt false", op(0, TypeGreaterThan, lit(0, 5), lit(0, 5)), 0},
		{"lt true", op(0, TypeLessThan, lit(0, 5), lit(0, 15)), 1},
		{"lt false", op(0, TypeLessThan, lit(0, 15), lit(0, 5)), 0},
		{"eq true", op(0, TypeEqualTo, lit(0, 5), lit(0, 5)), 1},
		{"eq false", op(0, TypeEqualTo, lit(0, 5), lit(0, 6)), 0},
		{
			"nested",
			op(0, TypeEqualTo,
				op(0, TypeSum, lit(0, 1), lit(0, 3)),
				op(0, TypeProduct, lit(0, 2), lit(0, 2)),
			),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Value(tt.packet))
		})
	}
}

func TestValueUnknownKind(t *testing.T) {
	assert.Panics(t, func() { Value(Packet{}) })
	assert.Panics(t, func() { Value(op(0, TypeLiteral, lit(0, 1))) })
}

// Decoded trees are read-only, so any number of goroutines may evaluate the
// same tree at once.
func TestEvaluateConcurrently(t *testing.T) {
	p, err := Decode("A0016C880162017C3686B18A3D4780")
	require.NoError(t, err)

	expectedSum, expectedValue := VersionSum(p), Value(p)

	wg := sync.WaitGroup{}
	sums := make([]uint64, 16)
	values := make([]uint64, 16)
	for i := range sums {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sums[i] = VersionSum(p)
			values[i] = Value(p)
		}(i)
	}
	wg.Wait()

	for i := range sums {
		assert.Equal(t, expectedSum, sums[i])
		assert.Equal(t, expectedValue, values[i])
	}
}

func TestCount(t *testing.T) {
	p, err := Decode("9C0141080250320F1802104A08")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Count())
	assert.Equal(t, 1, lit(0, 1).Count())
}

func BenchmarkValue(b *testing.B) {
	p, err := Decode("A0016C880162017C3686B18A3D4780")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Value(p)
	}
}
