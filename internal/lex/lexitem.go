/*
 * Copyright 2020 Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

package lex

import (
	"fmt"
	"strconv"
)

// A token returned from the Lexer.
type Item struct {
	Type itemType // The type of this Item.
	Pos  int      // The starting position, in bytes, of this Item in the input.
	Val  []byte   // The value of this Item.
}

// String satisfies Stringer.
func (i Item) String() string {
	_, typeKnown := itemTypeMap[i.Type]
	switch {
	case i.Type == ItemEOF:
		return "EOF"
	case i.Type == ItemNewline:
		return "NL"
	case len(i.Val) > 75:
		return fmt.Sprintf("<%.75s>...", i.Val)
	case !typeKnown:
		return fmt.Sprintf("%s <%s>", i.Type, i.Val)
	}
	return fmt.Sprintf("<%s>", i.Val)
}

const (
	ItemError itemType = iota
	ItemEOF

	ItemComment
	ItemNewline
	ItemNumber
	ItemTransmission

	ItemSeparator // One of - -> = =>
)

// Type of the lex Item.
type itemType int

var itemTypeMap = map[itemType]string{
	ItemError: "Error",
	ItemEOF:   "EOF",

	ItemComment:      "Comment",
	ItemNewline:      "Newline",
	ItemNumber:       "Number",
	ItemTransmission: "Transmission",

	ItemSeparator: "Separator",
}

func (i itemType) String() string {
	if s, ok := itemTypeMap[i]; ok {
		return s
	}
	return "Unknown itemType " + strconv.Itoa(int(i))
}
