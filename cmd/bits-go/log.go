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
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// envLogLevel overrides the configured log level when set.
const envLogLevel = "BITS_LOG_LEVEL"

// initLogger builds the console logger for the given level, installs it as
// the global logger, and returns it. Output goes to stderr so results on
// stdout stay clean.
func initLogger(level string) zerolog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(out io.Writer, level string) zerolog.Logger {
	if env := os.Getenv(envLogLevel); env != "" {
		level = env
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "bits-go").Logger()
	log.Logger = logger
	return logger
}
