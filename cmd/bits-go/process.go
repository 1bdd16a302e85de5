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

	"github.com/amzn/bits-go/bits"
	"github.com/amzn/bits-go/internal/lex"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// process reads the specified input file(s) and runs the named command over
// every transmission they hold.
func process(cmd string, args []string) error {
	p, err := newProcessor(cmd, args)
	if err != nil {
		return err
	}
	return p.run()
}

type processor struct {
	cmd  string
	opts *options
	cfg  config
	log  zerolog.Logger

	out  io.Writer
	text *bits.TextWriter

	seen   int
	failed int
}

func newProcessor(cmd string, args []string) (*processor, error) {
	opts, err := parseOptions(args)
	if err != nil {
		return nil, err
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	return &processor{
		cmd:  cmd,
		opts: opts,
		cfg:  cfg,
		log:  initLogger(cfg.LogLevel),
	}, nil
}

func (p *processor) run() (deferredErr error) {
	outf, err := OpenOutput(p.opts.outf)
	if err != nil {
		return err
	}
	defer func() {
		closeError := outf.Close()
		if deferredErr == nil {
			deferredErr = closeError
		}
	}()

	p.out = outf
	p.text = bits.NewTextWriterOpts(outf, p.cfg.textWriterOpts())

	for _, in := range p.opts.inputs() {
		if err := p.processFile(in); err != nil {
			return err
		}
	}

	p.log.Debug().Str("command", p.cmd).Int("transmissions", p.seen).Int("failed", p.failed).Msg("done")
	if p.failed > 0 {
		return errors.Errorf("%v of %v transmissions failed", p.failed, p.seen)
	}
	return nil
}

// processFile runs the command over every transmission in a single input.
func (p *processor) processFile(in string) error {
	name := inputName(in)
	p.log.Debug().Str("input", name).Msg("reading")

	data, err := ReadInput(in)
	if err != nil {
		return err
	}
	lines, err := lex.Lines(data)
	if err != nil {
		return errors.Wrap(err, name)
	}

	for _, line := range lines {
		p.seen++
		if err := p.processLine(line); err != nil {
			p.failed++
			p.log.Error().Err(err).Str("input", name).Int("line", line.Num).Msg("transmission failed")
		}
	}
	return nil
}

// processLine decodes a single transmission and writes the command's result.
func (p *processor) processLine(line lex.Line) error {
	pkt, err := bits.DecodeOpts(line.Hex, p.cfg.decoderOpts())
	if err != nil {
		return err
	}

	switch p.cmd {
	case cmdDecode:
		return p.text.WritePacket(pkt)

	case cmdSum:
		_, err = fmt.Fprintln(p.out, bits.VersionSum(pkt))

	case cmdEval:
		_, err = fmt.Fprintln(p.out, bits.Value(pkt))

	case cmdEncode:
		var hex string
		if hex, err = bits.EncodeHex(pkt, p.cfg.encoderOpts()); err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.out, hex)

	case cmdCheck:
		return p.check(line, pkt)

	default:
		return errors.Errorf("unknown command %q", p.cmd)
	}
	return err
}

// check compares a transmission's result against the one its line expects.
func (p *processor) check(line lex.Line, pkt bits.Packet) error {
	if !line.HasExpected {
		return errors.New("no expected result")
	}

	actual := p.cfg.evaluate(pkt)
	if actual != line.Expected {
		if _, err := fmt.Fprintf(p.out, "FAIL %v: %v %v, expected %v\n", line.Hex, p.cfg.Part, actual, line.Expected); err != nil {
			return err
		}
		return errors.Errorf("%v is %v, expected %v", p.cfg.Part, actual, line.Expected)
	}

	_, err := fmt.Fprintf(p.out, "ok   %v: %v %v\n", line.Hex, p.cfg.Part, actual)
	return err
}
