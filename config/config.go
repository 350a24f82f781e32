// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/DataDog/dlist-bench/bench"
	"github.com/DataDog/dlist-bench/log"
	"github.com/joho/godotenv"
)

// Configuration environment variables
const (
	EnvSizes      = "DLIST_BENCH_SIZES"
	EnvSeed       = "DLIST_BENCH_SEED"
	EnvValueRange = "DLIST_BENCH_VALUE_RANGE"
	EnvVerify     = "DLIST_BENCH_VERIFY"
	EnvReport     = "DLIST_BENCH_REPORT"
	EnvLogFormat  = "DLIST_LOG_FORMAT"
	EnvLogLevel   = "DLIST_LOG_LEVEL"
)

// Configuration constants and default values
const (
	DefaultDotEnv   = ".env"
	DefaultLogLevel = "info"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type (
	// Config holds the configuration of the benchmark driver.
	Config struct {
		// Bench is passed as-is to [bench.Run].
		Bench bench.Options
		// ReportPath is where to write the YAML report. Empty means no report.
		ReportPath string
	}

	// LogConfig selects the logging backend.
	LogConfig struct {
		Format string
		Level  string
	}
)

// LoadDotEnv loads variables from the supplied files (or [DefaultDotEnv] if
// none) into the environment. Variables already set are not overridden, and
// missing files are silently ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnv}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("config: %s not found, skipping", path)
			continue
		}
		if err != nil {
			return fmt.Errorf("config: loading %s: %w", path, err)
		}
	}
	return nil
}

// NewLogConfig reads the logging configuration from the env.
func NewLogConfig() LogConfig {
	format := strings.ToLower(os.Getenv(EnvLogFormat))
	if format != LogFormatJSON {
		format = LogFormatText
	}
	level, present := os.LookupEnv(EnvLogLevel)
	if !present || level == "" {
		level = DefaultLogLevel
	}
	return LogConfig{Format: format, Level: level}
}

// New creates and returns a new driver configuration by reading the env.
func New() Config {
	return Config{
		Bench: bench.Options{
			Sizes:      readSizes(),
			ValueRange: readValueRange(),
			Seed:       readSeed(),
			Verify:     readVerify(),
		},
		ReportPath: os.Getenv(EnvReport),
	}
}

func readSizes() []int {
	defaultSizes := slices.Clone(bench.DefaultSizes)
	val, present := os.LookupEnv(EnvSizes)
	if !present || strings.TrimSpace(val) == "" {
		return defaultSizes
	}

	fields := strings.Split(val, ",")
	sizes := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			log.Debug("config: %s must be a comma-separated list of positive integers, got %q. Defaulting to %v", EnvSizes, val, defaultSizes)
			return defaultSizes
		}
		sizes = append(sizes, n)
	}
	return sizes
}

func readValueRange() int {
	val, present := os.LookupEnv(EnvValueRange)
	if !present {
		return bench.DefaultValueRange
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Debug("config: could not parse %s. Defaulting to %d", EnvValueRange, bench.DefaultValueRange)
		return bench.DefaultValueRange
	}
	if n <= 0 {
		log.Debug("config: %s value must be positive. Defaulting to %d", EnvValueRange, bench.DefaultValueRange)
		return bench.DefaultValueRange
	}
	return n
}

func readSeed() uint64 {
	val, present := os.LookupEnv(EnvSeed)
	if !present {
		return 0
	}
	seed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		log.Debug("config: could not parse %s. Using a random seed", EnvSeed)
		return 0
	}
	return seed
}

func readVerify() bool {
	verify, _ := strconv.ParseBool(os.Getenv(EnvVerify))
	return verify
}
