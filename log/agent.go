// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package log

import (
	"fmt"
	"io"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"github.com/cihub/seelog"
)

const agentLogFormat = "%Date(2006-01-02 15:04:05 MST) | %LEVEL | %Msg%n"

// SetupAgentLogger configures the datadog-agent logger backing the default
// [Backend] to write synchronously to w, dropping messages below level. Until
// it is called, the datadog-agent logger buffers everything below the error
// level without ever printing it.
func SetupAgentLogger(w io.Writer, level string) error {
	logger, err := seelog.LoggerFromWriterWithMinLevelAndFormat(w, seelog.TraceLvl, agentLogFormat)
	if err != nil {
		return fmt.Errorf("log: creating the agent logger: %w", err)
	}
	ddlog.SetupLogger(logger, level)
	return nil
}

// CurrentBackend returns the active logging backend.
func CurrentBackend() Backend {
	return *backend.Load()
}
