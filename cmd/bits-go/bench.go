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
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/amzn/bits-go/bits"
	"github.com/amzn/bits-go/internal/lex"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type benchJob struct {
	input string
	line  lex.Line
}

// A benchResult holds the mean time per iteration of each stage for one
// transmission.
type benchResult struct {
	parse time.Duration
	sum   time.Duration
	value time.Duration

	versionSum uint64
	val        uint64
	err        error
}

// bench times parsing and evaluating every transmission in the input
// file(s), spreading transmissions over a fixed number of workers.
func bench(args []string) (deferredErr error) {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger := initLogger(cfg.LogLevel)

	var jobs []benchJob
	for _, in := range opts.inputs() {
		data, err := ReadInput(in)
		if err != nil {
			return err
		}
		lines, err := lex.Lines(data)
		if err != nil {
			return errors.Wrap(err, inputName(in))
		}
		for _, line := range lines {
			jobs = append(jobs, benchJob{inputName(in), line})
		}
	}

	outf, err := OpenOutput(opts.outf)
	if err != nil {
		return err
	}
	defer func() {
		closeError := outf.Close()
		if deferredErr == nil {
			deferredErr = closeError
		}
	}()

	results := runBenchJobs(jobs, cfg)
	return reportBench(outf, logger, jobs, results)
}

// runBenchJobs runs every job on cfg.Workers goroutines. results[i] belongs
// to jobs[i].
func runBenchJobs(jobs []benchJob, cfg config) []benchResult {
	results := make([]benchResult, len(jobs))
	work := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = runBench(jobs[idx].line.Hex, cfg.decoderOpts(), cfg.Iterations)
			}
		}()
	}

	for i := range jobs {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

// runBench decodes and evaluates hex n times per stage.
func runBench(hex string, opts bits.DecoderOpts, n int) benchResult {
	var res benchResult

	var pkt bits.Packet
	start := time.Now()
	for i := 0; i < n; i++ {
		p, err := bits.DecodeOpts(hex, opts)
		if err != nil {
			res.err = err
			return res
		}
		pkt = p
	}
	res.parse = time.Since(start) / time.Duration(n)

	start = time.Now()
	for i := 0; i < n; i++ {
		res.versionSum = bits.VersionSum(pkt)
	}
	res.sum = time.Since(start) / time.Duration(n)

	start = time.Now()
	for i := 0; i < n; i++ {
		res.val = bits.Value(pkt)
	}
	res.value = time.Since(start) / time.Duration(n)

	return res
}

func reportBench(out io.Writer, logger zerolog.Logger, jobs []benchJob, results []benchResult) error {
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tLINE\tPARSE\tSUM\tVALUE\tVERSIONS\tRESULT")

	failed := 0
	for i, res := range results {
		job := jobs[i]
		if res.err != nil {
			failed++
			logger.Error().Err(res.err).Str("input", job.input).Int("line", job.line.Num).Msg("transmission failed")
			continue
		}
		logger.Info().
			Str("input", job.input).
			Int("line", job.line.Num).
			Dur("parse", res.parse).
			Dur("sum", res.sum).
			Dur("value", res.value).
			Msg("bench")
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			job.input, job.line.Num, res.parse, res.sum, res.value, res.versionSum, res.val)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%v of %v transmissions failed", failed, len(results))
	}
	return nil
}
