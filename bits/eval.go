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

// VersionSum returns the sum of the version numbers of p and every packet
// nested within it.
func VersionSum(p Packet) uint64 {
	sum := uint64(p.Version)
	for _, c := range p.Children() {
		sum += VersionSum(c)
	}
	return sum
}

// Value evaluates the expression rooted at p. Sums and products wrap on
// overflow. The comparison operators yield 1 when the relation holds between
// their first and second sub-packets and 0 otherwise.
//
// Value assumes p came from the parser; hand-built trees with too few
// sub-packets may panic.
func Value(p Packet) uint64 {
	switch k := p.Kind.(type) {
	case Literal:
		return k.Value
	case Operator:
		return k.value()
	default:
		panic(fmt.Sprintf("bits: unknown packet kind %T", p.Kind))
	}
}

func (o Operator) value() uint64 {
	vals := make([]uint64, len(o.Children))
	for i, c := range o.Children {
		vals[i] = Value(c)
	}

	switch o.Op {
	case TypeSum:
		var sum uint64
		for _, v := range vals {
			sum += v
		}
		return sum

	case TypeProduct:
		prod := uint64(1)
		for _, v := range vals {
			prod *= v
		}
		return prod

	case TypeMinimum:
		min := vals[0]
		for _, v := range vals[1:] {
			if v < min {
				min = v
			}
		}
		return min

	case TypeMaximum:
		max := vals[0]
		for _, v := range vals[1:] {
			if v > max {
				max = v
			}
		}
		return max

	case TypeGreaterThan:
		return boolToUint(vals[0] > vals[1])

	case TypeLessThan:
		return boolToUint(vals[0] < vals[1])

	case TypeEqualTo:
		return boolToUint(vals[0] == vals[1])

	default:
		panic(fmt.Sprintf("bits: %v is not an operator", o.Op))
	}
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
