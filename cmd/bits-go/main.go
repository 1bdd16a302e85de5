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
	"os"
	"time"

	"github.com/amzn/bits-go/internal"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// main is the main entry point for bits-go.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		printVersion()

	case cmdDecode, cmdSum, cmdEval, cmdEncode, cmdCheck:
		err = process(os.Args[1], os.Args[2:])

	case cmdBench:
		err = bench(os.Args[2:])

	default:
		err = usageErrorf("unrecognized command %q", os.Args[1])
	}

	if err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Println(err.Error())
			printHelp()
		} else {
			log.Error().Err(err).Str("command", os.Args[1]).Msg("failed")
		}
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  bits-go help")
	fmt.Println("  bits-go version")
	fmt.Println("  bits-go decode [args] [files]")
	fmt.Println("  bits-go sum [args] [files]")
	fmt.Println("  bits-go eval [args] [files]")
	fmt.Println("  bits-go encode [args] [files]")
	fmt.Println("  bits-go check [args] [files]")
	fmt.Println("  bits-go bench [args] [files]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  decode     Prints the packet tree of each transmission.")
	fmt.Println("  sum        Prints the sum of the version numbers of each transmission.")
	fmt.Println("  eval       Prints the value of each transmission.")
	fmt.Println("  encode     Re-encodes each transmission with the chosen length mode.")
	fmt.Println("  check      Compares each transmission against its expected result.")
	fmt.Println("  bench      Times parsing and evaluating each transmission.")
	fmt.Println()
	fmt.Println("Args:")
	fmt.Println("  -o, --output FILE        Write results to FILE instead of stdout.")
	fmt.Println("  -c, --config FILE        Read settings from a TOML file (default $" + envConfig + ").")
	fmt.Println("  -f, --format FORMAT      Packet format for decode: text or pretty.")
	fmt.Println("  -m, --length-mode MODE   Length mode for encode: bits or count.")
	fmt.Println("  -p, --part PART          Evaluator for check: sum or value.")
	fmt.Println("  -s, --strict             Reject non-zero bits after the outermost packet.")
	fmt.Println("  -n, --iterations N       Iterations per transmission for bench.")
	fmt.Println("  -w, --workers N          Concurrent transmissions for bench.")
	fmt.Println("  -l, --log-level LEVEL    trace, debug, info, warn or error.")
	fmt.Println()
	fmt.Println("Files hold one hex transmission per line, optionally followed by")
	fmt.Println("\" - <expected>\". Lines starting with # or // are comments. With no")
	fmt.Println("files, or a file named -, transmissions are read from stdin.")
}

// printVersion prints version info for this tool.
func printVersion() {
	buildtime := "unknown-buildtime"
	if t, err := time.Parse(time.RFC3339, internal.BuildTime); err == nil {
		buildtime = t.UTC().Format(time.RFC3339)
	}
	fmt.Printf("bits-go %v (built %v)\n", internal.GitCommit, buildtime)
}
