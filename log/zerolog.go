// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package log

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// NewZerolog creates a structured JSON logger writing to w. Unknown levels
// fall back to info.
func NewZerolog(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ZerologBackend returns a [Backend] that emits messages through the supplied
// zerolog logger. Critical messages are emitted at the fatal level, without
// exiting the process.
func ZerologBackend(logger zerolog.Logger) Backend {
	msg := func(ev func() *zerolog.Event) func(string, ...any) {
		return func(format string, args ...any) {
			ev().Msgf(format, args...)
		}
	}
	errMsg := func(level zerolog.Level) func(string, ...any) error {
		return func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			logger.WithLevel(level).Msg(err.Error())
			return err
		}
	}

	return Backend{
		Trace:     msg(logger.Trace),
		Debug:     msg(logger.Debug),
		Info:      msg(logger.Info),
		Warn:      msg(logger.Warn),
		Errorf:    errMsg(zerolog.ErrorLevel),
		Criticalf: errMsg(zerolog.FatalLevel),
	}
}
