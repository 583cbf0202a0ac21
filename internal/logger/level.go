// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strings"

	"github.com/hashicorp/go-hclog"
)

//go:generate ${TOOLS_BIN}/stringer -type=Level
type Level int

const (
	DEBUG    Level = 10
	INFO     Level = 20
	WARNING  Level = 30
	ERROR    Level = 40
	CRITICAL Level = 50
)

// AllLevels lists every known level from the most to the least verbose.
var AllLevels = []Level{DEBUG, INFO, WARNING, ERROR, CRITICAL}

// LevelFromString resolves a case-insensitive level name, unknown names resolve to INFO.
func LevelFromString(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}

func (l Level) convertedLevel() hclog.Level {
	switch l {
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARNING:
		return hclog.Warn
	case ERROR, CRITICAL:
		return hclog.Error
	default:
		return hclog.Info
	}
}
