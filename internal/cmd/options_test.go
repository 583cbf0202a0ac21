// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/config"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options       *options
		expectedError error
	}{
		"valid": {
			options: &options{kind: "step", message: "build"},
		},
		"missing kind": {
			options:       &options{},
			expectedError: errNoArguments,
		},
		"unknown kind": {
			options:       &options{kind: "trace", message: "message"},
			expectedError: errInvalidKind,
		},
		"missing message": {
			options:       &options{kind: "info"},
			expectedError: errNoMessage,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.options.validate()
			if tc.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func TestExecuteLogsDiagnostics(t *testing.T) {
	t.Parallel()

	diagnostics := new(bytes.Buffer)
	log := logger.NewLogger(diagnostics)
	log.SetLevel(logger.DEBUG)
	ctx := logger.WithContext(t.Context(), log)

	console := new(bytes.Buffer)
	cfg := config.Default()
	cfg.Console = true

	opts := &options{
		kind:    "critical",
		message: "meltdown",
		name:    "Reactor",
		fields:  []any{"core", 7},
		config:  cfg,
		console: console,
		out:     new(bytes.Buffer),
	}
	require.NoError(t, opts.execute(ctx))

	assert.Contains(t, console.String(), "[CRITICAL] ")
	assert.True(t, strings.HasSuffix(console.String(), " | Reactor | meltdown | core=7\n"))
	assert.Contains(t, diagnostics.String(), "logging sink configured")
}
