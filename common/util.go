// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/spf13/viper"
)

var logLevels = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
	"panic":   zerolog.PanicLevel,
}

// SetupLogging configures the global zerolog logger from the `log.*` viper keys.
// The returned function closes the log file when log.output names one.
func SetupLogging() func() {
	level := strings.ToLower(viper.GetString("log.level"))
	if lvl, ok := logLevels[level]; ok {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if viper.GetBool("log.report_caller") {
		log.Logger = log.With().Caller().Logger()
	}

	closer := func() {}
	output := viper.GetString("log.output")
	switch output {
	case "", "stderr":
		log.Logger = log.Output(logWriter(os.Stderr))
	case "stdout":
		log.Logger = log.Output(logWriter(os.Stdout))
	default:
		fh, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			log.Error().Err(err).Str("Output", output).Msg("could not open log file; logging to stderr")
			log.Logger = log.Output(logWriter(os.Stderr))
			break
		}
		log.Logger = log.Output(logWriter(fh))
		closer = func() { fh.Close() }
	}

	// setup stack marshaler
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Debug().Str("Level", zerolog.GlobalLevel().String()).Msg("logging configured")
	return closer
}

func logWriter(fh *os.File) zerolog.LevelWriter {
	if viper.GetBool("log.pretty") {
		return zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: fh})
	}
	return zerolog.MultiLevelWriter(fh)
}
