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

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	test := func(args []string, expected options) {
		t.Run(fmtArgs(args), func(t *testing.T) {
			opts, err := parseOptions(args)
			require.NoError(t, err)
			if diff := cmp.Diff(expected, *opts, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("options differ (-expected, +actual):\n%s", diff)
			}
		})
	}

	test(nil, options{})
	test([]string{"a.txt", "b.txt"}, options{infs: []string{"a.txt", "b.txt"}})
	test([]string{"-"}, options{infs: []string{"-"}})
	test([]string{"--", "-o"}, options{infs: []string{"-o"}})
	test([]string{"-o", "out.txt", "-f", "pretty", "in.txt"},
		options{infs: []string{"in.txt"}, outf: "out.txt", format: "pretty"})
	test([]string{"--config", "bits.toml", "-s", "--length-mode", "count", "-p", "sum"},
		options{cfgf: "bits.toml", strict: true, lengthMode: "count", part: "sum"})
	test([]string{"-n", "10", "--workers", "3", "-l", "debug", "-"},
		options{infs: []string{"-"}, iterations: 10, workers: 3, logLevel: "debug"})
}

func TestParseOptionsErrors(t *testing.T) {
	test := func(args []string, expected string) {
		t.Run(fmtArgs(args), func(t *testing.T) {
			_, err := parseOptions(args)
			require.Error(t, err)
			assert.IsType(t, &usageError{}, err)
			assert.Equal(t, expected, err.Error())
		})
	}

	test([]string{"-o"}, "no value specified for -o")
	test([]string{"--bogus", "x"}, `unrecognized option "--bogus"`)
	test([]string{"-n", "zero"}, `-n wants a positive integer, got "zero"`)
	test([]string{"-w", "0"}, `-w wants a positive integer, got "0"`)
}

func TestOptionsInputs(t *testing.T) {
	assert.Equal(t, []string{"-"}, (&options{}).inputs())
	assert.Equal(t, []string{"a", "b"}, (&options{infs: []string{"a", "b"}}).inputs())
}

func fmtArgs(args []string) string {
	if len(args) == 0 {
		return "none"
	}
	s := args[0]
	for _, a := range args[1:] {
		s += " " + a
	}
	return s
}
