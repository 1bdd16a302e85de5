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
	"fmt"
	"strconv"
	"strings"
)

// The commands that take transmission files.
const (
	cmdDecode = "decode"
	cmdSum    = "sum"
	cmdEval   = "eval"
	cmdEncode = "encode"
	cmdCheck  = "check"
	cmdBench  = "bench"
)

// A usageError reports a malformed command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{fmt.Sprintf(format, args...)}
}

// options holds the parsed command line. Zero values mean "not given", so the
// config file or its defaults apply.
type options struct {
	infs []string
	outf string
	cfgf string

	format     string
	lengthMode string
	part       string
	logLevel   string
	strict     bool
	iterations int
	workers    int
}

func parseOptions(args []string) (*options, error) {
	ret := &options{}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "--" {
			i++
			break
		}

		if arg == "-s" || arg == "--strict" {
			ret.strict = true
			continue
		}

		i++
		if i >= len(args) {
			return nil, usageErrorf("no value specified for %v", arg)
		}
		val := args[i]

		var err error
		switch arg {
		case "-o", "--output":
			ret.outf = val

		case "-c", "--config":
			ret.cfgf = val

		case "-f", "--format":
			ret.format = val

		case "-m", "--length-mode":
			ret.lengthMode = val

		case "-p", "--part":
			ret.part = val

		case "-l", "--log-level":
			ret.logLevel = val

		case "-n", "--iterations":
			ret.iterations, err = positiveInt(arg, val)

		case "-w", "--workers":
			ret.workers, err = positiveInt(arg, val)

		default:
			return nil, usageErrorf("unrecognized option %q", arg)
		}
		if err != nil {
			return nil, err
		}
	}

	// Any remaining args are input files.
	ret.infs = append(ret.infs, args[i:]...)

	return ret, nil
}

func positiveInt(arg, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, usageErrorf("%v wants a positive integer, got %q", arg, val)
	}
	return n, nil
}

// inputs returns the input files, or stdin if none were given.
func (o *options) inputs() []string {
	if len(o.infs) == 0 {
		return []string{"-"}
	}
	return o.infs
}
