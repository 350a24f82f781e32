// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/dlist-bench/bench"
	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	for _, tc := range []struct {
		name     string
		env      string
		expected []int
	}{
		{
			name:     "parsable",
			env:      "10,20,30",
			expected: []int{10, 20, 30},
		},
		{
			name:     "spaces",
			env:      " 100, 1000 ",
			expected: []int{100, 1000},
		},
		{
			name:     "single",
			env:      "5",
			expected: []int{5},
		},
		{
			name:     "not-parsable",
			env:      "10,abc",
			expected: bench.DefaultSizes,
		},
		{
			name:     "zero",
			env:      "10,0",
			expected: bench.DefaultSizes,
		},
		{
			name:     "negative",
			env:      "-10",
			expected: bench.DefaultSizes,
		},
		{
			name:     "trailing-comma",
			env:      "10,",
			expected: bench.DefaultSizes,
		},
		{
			name:     "empty-string",
			env:      "",
			expected: bench.DefaultSizes,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvSizes, tc.env)
			require.Equal(t, tc.expected, New().Bench.Sizes)
		})
	}

	t.Run("unset", func(t *testing.T) {
		unsetenv(t, EnvSizes)
		sizes := New().Bench.Sizes
		require.Equal(t, bench.DefaultSizes, sizes)

		// The defaults are not shared with the caller.
		sizes[0] = 1
		require.Equal(t, 100, bench.DefaultSizes[0])
	})
}

func TestValueRange(t *testing.T) {
	for _, tc := range []struct {
		name     string
		env      string
		expected int
	}{
		{name: "parsable", env: "10", expected: 10},
		{name: "not-parsable", env: "ten", expected: bench.DefaultValueRange},
		{name: "negative", env: "-1", expected: bench.DefaultValueRange},
		{name: "zero", env: "0", expected: bench.DefaultValueRange},
		{name: "empty-string", env: "", expected: bench.DefaultValueRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvValueRange, tc.env)
			require.Equal(t, tc.expected, New().Bench.ValueRange)
		})
	}
}

func TestSeed(t *testing.T) {
	for _, tc := range []struct {
		name     string
		env      string
		expected uint64
	}{
		{name: "parsable", env: "1234567890", expected: 1234567890},
		{name: "max", env: "18446744073709551615", expected: 18446744073709551615},
		{name: "not-parsable", env: "not a seed", expected: 0},
		{name: "negative", env: "-1", expected: 0},
		{name: "empty-string", env: "", expected: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvSeed, tc.env)
			require.Equal(t, tc.expected, New().Bench.Seed)
		})
	}
}

func TestVerifyAndReport(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetenv(t, EnvVerify)
		unsetenv(t, EnvReport)
		cfg := New()
		require.False(t, cfg.Bench.Verify)
		require.Empty(t, cfg.ReportPath)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvVerify, "true")
		t.Setenv(EnvReport, "report.yaml")
		cfg := New()
		require.True(t, cfg.Bench.Verify)
		require.Equal(t, "report.yaml", cfg.ReportPath)
	})

	t.Run("weird-verify", func(t *testing.T) {
		t.Setenv(EnvVerify, "weirdvalue")
		require.False(t, New().Bench.Verify)
	})
}

func TestLogConfig(t *testing.T) {
	for _, tc := range []struct {
		name     string
		format   string
		level    string
		expected LogConfig
	}{
		{
			name:     "defaults",
			expected: LogConfig{Format: LogFormatText, Level: DefaultLogLevel},
		},
		{
			name:     "json",
			format:   "JSON",
			level:    "debug",
			expected: LogConfig{Format: LogFormatJSON, Level: "debug"},
		},
		{
			name:     "unknown-format",
			format:   "xml",
			level:    "warn",
			expected: LogConfig{Format: LogFormatText, Level: "warn"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvLogFormat, tc.format)
			t.Setenv(EnvLogLevel, tc.level)
			require.Equal(t, tc.expected, NewLogConfig())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("file-not-found", func(t *testing.T) {
		require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "i do not exist")))
	})

	t.Run("local-file", func(t *testing.T) {
		unsetenv(t, EnvSizes)
		t.Setenv(EnvSeed, "99")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(EnvSizes+"=1,2,3\n"+EnvSeed+"=7\n"), 0o600))
		require.NoError(t, LoadDotEnv(path))

		cfg := New()
		require.Equal(t, []int{1, 2, 3}, cfg.Bench.Sizes)
		// Variables already in the environment win.
		require.Equal(t, uint64(99), cfg.Bench.Seed)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("bad-key=value\n"), 0o600))
		require.Error(t, LoadDotEnv(path))
	})
}

// unsetenv removes name from the environment for the duration of the test.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}
