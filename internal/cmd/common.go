// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

var (
	errNoArguments  = errors.New("no line kind provided")
	errInvalidKind  = errors.New("invalid line kind provided")
	errNoMessage    = errors.New("no message provided")
	errInvalidField = errors.New("invalid field, expected key=value")

	// availableKinds holds the list of line kinds and their description
	// for command completion and help messages.
	availableKinds = map[string]string{
		"debug":    "DEBUG severity line",
		"info":     "INFO severity line",
		"warning":  "WARNING severity line",
		"error":    "ERROR severity line",
		"critical": "CRITICAL severity line",
		"step":     "STEP line at INFO severity",
	}

	emitters = map[string]func(*logger.Component, string, ...any){
		"debug":    (*logger.Component).Debug,
		"info":     (*logger.Component).Info,
		"warning":  (*logger.Component).Warning,
		"error":    (*logger.Component).Error,
		"critical": (*logger.Component).Critical,
		"step":     (*logger.Component).Step,
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidKind), errors.Is(err, errNoMessage):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

func validArgsFunc(kinds map[string]string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		if len(args) == 0 {
			for name, description := range kinds {
				if strings.HasPrefix(name, toComplete) {
					comps = append(comps, cobra.CompletionWithDesc(name, description))
				}
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}

// parseFields converts key=value strings into an alternating key/value list.
func parseFields(rawFields []string) ([]any, error) {
	fields := make([]any, 0, len(rawFields)*2)
	for _, raw := range rawFields {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidField, raw)
		}

		fields = append(fields, key, value)
	}

	return fields, nil
}
