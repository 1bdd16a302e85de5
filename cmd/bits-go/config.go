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
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amzn/bits-go/bits"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// envConfig names a config file to use when -c is not given.
const envConfig = "BITS_CONFIG"

// config holds the settings shared by every command.
type config struct {
	LogLevel   string
	Format     string
	Strict     bool
	LengthMode string
	Part       string
	Workers    int
	Iterations int
}

type fileConfig struct {
	LogLevel   string `toml:"log_level"`
	Format     string `toml:"format"`
	Strict     bool   `toml:"strict"`
	LengthMode string `toml:"length_mode"`
	Part       string `toml:"part"`
	Workers    int    `toml:"workers"`
	Iterations int    `toml:"iterations"`
}

func defaultConfig() config {
	return config{
		LogLevel:   "info",
		Format:     "text",
		LengthMode: "bits",
		Part:       "value",
		Workers:    runtime.NumCPU(),
		Iterations: 100,
	}
}

// loadConfig reads a TOML config file over the defaults. Keys missing from
// the file keep their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errors.Wrap(err, "load config")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("length_mode") {
		cfg.LengthMode = strings.TrimSpace(raw.LengthMode)
	}
	if meta.IsDefined("part") {
		cfg.Part = strings.TrimSpace(raw.Part)
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("iterations") {
		cfg.Iterations = raw.Iterations
	}

	return cfg, nil
}

// resolveConfig loads the config file named by the options (or $BITS_CONFIG),
// applies any flags given on the command line, and validates the result.
func resolveConfig(opts *options) (config, error) {
	cfg := defaultConfig()

	path := opts.cfgf
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return config{}, err
		}
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.strict {
		cfg.Strict = true
	}
	if opts.lengthMode != "" {
		cfg.LengthMode = opts.lengthMode
	}
	if opts.part != "" {
		cfg.Part = opts.part
	}
	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}
	if opts.iterations != 0 {
		cfg.Iterations = opts.iterations
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return usageErrorf("unknown log level %q", c.LogLevel)
	}

	switch c.Format {
	case "text", "pretty":
	default:
		return usageErrorf("unknown format %q", c.Format)
	}

	switch c.LengthMode {
	case "bits", "count":
	default:
		return usageErrorf("unknown length mode %q", c.LengthMode)
	}

	switch c.Part {
	case "sum", "value":
	default:
		return usageErrorf("unknown part %q", c.Part)
	}

	if c.Workers <= 0 {
		return usageErrorf("workers must be positive, got %v", c.Workers)
	}
	if c.Iterations <= 0 {
		return usageErrorf("iterations must be positive, got %v", c.Iterations)
	}
	return nil
}

func (c config) decoderOpts() bits.DecoderOpts {
	if c.Strict {
		return bits.DecoderStrictPadding
	}
	return 0
}

func (c config) encoderOpts() bits.EncoderOpts {
	if c.LengthMode == "count" {
		return bits.EncoderCountMode
	}
	return 0
}

func (c config) textWriterOpts() bits.TextWriterOpts {
	if c.Format == "pretty" {
		return bits.TextWriterPretty
	}
	return 0
}

// evaluate applies the configured evaluator to p.
func (c config) evaluate(p bits.Packet) uint64 {
	if c.Part == "sum" {
		return bits.VersionSum(p)
	}
	return bits.Value(p)
}
