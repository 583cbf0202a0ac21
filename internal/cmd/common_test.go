// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"maps"
	"slices"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		args               []string
		toComplete         string
		expectedCompletion []string
	}{
		"no args, complete every kind": {
			args: []string{},
			expectedCompletion: []string{
				"critical\tCRITICAL severity line",
				"debug\tDEBUG severity line",
				"error\tERROR severity line",
				"info\tINFO severity line",
				"step\tSTEP line at INFO severity",
				"warning\tWARNING severity line",
			},
		},
		"some args, no completions": {
			args: []string{"info"},
		},
		"no args, partial string, return filtered kinds": {
			args:       []string{},
			toComplete: "d",
			expectedCompletion: []string{
				"debug\tDEBUG severity line",
			},
		},
		"no args, partial wrong string, return no kind": {
			args:       []string{},
			toComplete: "x",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			args, directive := validArgsFunc(availableKinds)(nil, test.args, test.toComplete)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.ElementsMatch(t, test.expectedCompletion, args)
		})
	}
}

func TestEveryKindHasAnEmitter(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, slices.Collect(maps.Keys(availableKinds)), slices.Collect(maps.Keys(emitters)))
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		rawFields      []string
		expectedFields []any
		expectedError  error
	}{
		"no fields": {
			expectedFields: []any{},
		},
		"fields keep order": {
			rawFields:      []string{"b=x", "a=1"},
			expectedFields: []any{"b", "x", "a", "1"},
		},
		"value can contain separator": {
			rawFields:      []string{"expr=a=b"},
			expectedFields: []any{"expr", "a=b"},
		},
		"empty value": {
			rawFields:      []string{"empty="},
			expectedFields: []any{"empty", ""},
		},
		"missing separator": {
			rawFields:     []string{"novalue"},
			expectedError: errInvalidField,
		},
		"empty key": {
			rawFields:     []string{"=value"},
			expectedError: errInvalidField,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			fields, err := parseFields(test.rawFields)
			if test.expectedError != nil {
				require.ErrorIs(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedFields, fields)
		})
	}
}
