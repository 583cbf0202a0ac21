// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldsFromArgs(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args           []any
		expectedFields Fields
		expectedString string
	}{
		"no args": {},
		"pairs keep insertion order": {
			args:           []any{"b", "x", "a", 1},
			expectedFields: Fields{{Key: "b", Value: "x"}, {Key: "a", Value: 1}},
			expectedString: "b=x | a=1",
		},
		"odd trailing value": {
			args:           []any{"a", 1, "lonely"},
			expectedFields: Fields{{Key: "a", Value: 1}, {Key: MissingKey, Value: "lonely"}},
			expectedString: "a=1 | EXTRA_VALUE_AT_END=lonely",
		},
		"non string keys are printed": {
			args:           []any{42, true},
			expectedFields: Fields{{Key: "42", Value: true}},
			expectedString: "42=true",
		},
		"values of any printable type": {
			args:           []any{"ratio", 0.5, "items", []int{1, 2}, "nothing", nil},
			expectedFields: Fields{{Key: "ratio", Value: 0.5}, {Key: "items", Value: []int{1, 2}}, {Key: "nothing", Value: nil}},
			expectedString: "ratio=0.5 | items=[1 2] | nothing=<nil>",
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			fields := FieldsFromArgs(test.args...)
			assert.Equal(t, test.expectedFields, fields)
			assert.Equal(t, test.expectedString, fields.String())
		})
	}
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	record := Record{
		Time:    time.Date(2024, time.March, 5, 7, 8, 9, 999, time.UTC),
		Level:   WARNING,
		Logger:  "example.com/graph",
		Line:    42,
		Message: "something happened",
	}

	assert.Equal(t, "2024-03-05 07:08:09 [WARNING] example.com/graph:42 - something happened", FormatRecord(record))
}

func TestComponentMessage(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

	assert.Equal(t, "[INFO] 2024-03-05 07:08:09 | node | hello", componentMessage("INFO", now, "node", "hello", nil))
	assert.Equal(t,
		"[STEP] 2024-03-05 07:08:09 | node | build | n=3",
		componentMessage("STEP", now, "node", "build", FieldsFromArgs("n", 3)),
	)
}
