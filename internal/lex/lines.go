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
	"strconv"

	"github.com/pkg/errors"
)

// A Line is a single transmission read from a transmission file.
type Line struct {
	Num         int    // 1-based line number in the file.
	Hex         string // The transmission, as written.
	Expected    uint64 // The expected result, if HasExpected.
	HasExpected bool
}

// Lines scans input and returns its transmissions in order. Blank lines and
// comments are skipped.
func Lines(input []byte) ([]Line, error) {
	x := New(input)

	var lines []Line
	for {
		item := x.NextItem()
		switch item.Type {
		case ItemEOF:
			return lines, nil

		case ItemError:
			return nil, errors.Errorf("line %d: %s", x.LineNumber(), item.Val)

		case ItemTransmission:
			lines = append(lines, Line{Num: x.LineNumber(), Hex: string(item.Val)})

		case ItemNumber:
			v, err := strconv.ParseUint(string(item.Val), 10, 64)
			if err != nil {
				line := x.LineNumber()
				x.Drain()
				return nil, errors.Wrapf(err, "line %d: invalid expected result", line)
			}
			last := &lines[len(lines)-1]
			last.Expected = v
			last.HasExpected = true
		}
	}
}
