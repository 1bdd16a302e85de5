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

package bits_test

import (
	"fmt"

	"github.com/amzn/bits-go/bits"
)

func ExampleDecode() {
	p, err := bits.Decode("9C0141080250320F1802104A08")
	if err != nil {
		panic(err)
	}

	fmt.Println(p)
	fmt.Println(bits.VersionSum(p), bits.Value(p))
	// Output:
	// v4:(eq v2:(sum v2:1 v4:3) v6:(product v0:2 v2:2))
	// 20 1
}

func ExampleEncodeHex() {
	p := bits.Packet{
		Version: 1,
		Kind: bits.Operator{
			Op: bits.TypeLessThan,
			Children: []bits.Packet{
				{Version: 6, Kind: bits.Literal{Value: 10}},
				{Version: 2, Kind: bits.Literal{Value: 20}},
			},
		},
	}

	hex, err := bits.EncodeHex(p, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(hex)
	// Output: 38006F45291200
}
