// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package log is a small logging facade. All packages of this module log
// through it, and the actual sink can be swapped using [SetBackend]. By
// default, messages are forwarded to the datadog-agent logger.
package log

import (
	"fmt"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of functions used to emit log messages at each level.
// All fields must be set.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var backend = atomic.NewPointer(&Backend{
	Trace: ddlog.Tracef,
	Debug: ddlog.Debugf,
	Info:  ddlog.Infof,
	Warn: func(format string, args ...any) {
		_ = ddlog.Warnf(format, args...)
	},
	Errorf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Errorf("%s", err)
		return err
	},
	Criticalf: func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		_ = ddlog.Criticalf("%s", err)
		return err
	},
})

// SetBackend replaces the active logging backend.
func SetBackend(b Backend) {
	backend.Store(&b)
}

// Trace logs a message at the trace level.
func Trace(format string, args ...any) {
	backend.Load().Trace(format, args...)
}

// Debug logs a message at the debug level.
func Debug(format string, args ...any) {
	backend.Load().Debug(format, args...)
}

// Info logs a message at the info level.
func Info(format string, args ...any) {
	backend.Load().Info(format, args...)
}

// Warn logs a message at the warning level.
func Warn(format string, args ...any) {
	backend.Load().Warn(format, args...)
}

// Errorf logs a message at the error level, and returns the formatted message
// as an error. The format supports the %w verb, and the returned error wraps
// the corresponding argument.
func Errorf(format string, args ...any) error {
	return backend.Load().Errorf(format, args...)
}

// Criticalf is the same as [Errorf], at the critical level.
func Criticalf(format string, args ...any) error {
	return backend.Load().Criticalf(format, args...)
}
