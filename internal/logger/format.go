// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TimeLayout is the second resolution timestamp used in every rendered line.
	TimeLayout = "2006-01-02 15:04:05"
	// FileTimeLayout is the timestamp embedded in log file names.
	FileTimeLayout = "20060102_150405"

	// MissingKey is used for a trailing value that has no key, mirroring hclog.
	MissingKey = "EXTRA_VALUE_AT_END"

	fieldSeparator = " | "
)

// Field is a single key/value pair of extra context.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered list of context pairs, rendered in insertion order.
type Fields []Field

// FieldsFromArgs converts an alternating key/value list into Fields.
func FieldsFromArgs(args ...any) Fields {
	if len(args) == 0 {
		return nil
	}

	fields := make(Fields, 0, (len(args)+1)/2)
	for idx := 0; idx < len(args); idx += 2 {
		if idx+1 == len(args) {
			fields = append(fields, Field{Key: MissingKey, Value: args[idx]})
			break
		}

		key, ok := args[idx].(string)
		if !ok {
			key = fmt.Sprint(args[idx])
		}
		fields = append(fields, Field{Key: key, Value: args[idx+1]})
	}

	return fields
}

// String renders the fields as "k1=v1 | k2=v2".
func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}

	parts := make([]string, 0, len(f))
	for _, field := range f {
		parts = append(parts, field.Key+"="+fmt.Sprint(field.Value))
	}
	return strings.Join(parts, fieldSeparator)
}

// Record is one line handed to a Sink.
type Record struct {
	Time    time.Time
	Level   Level
	Logger  string
	Line    int
	Message string
}

// FormatRecord renders a record with the sink template
// "YYYY-MM-DD HH:MM:SS [LEVEL] logger:line - message", without a trailing newline.
func FormatRecord(record Record) string {
	var builder strings.Builder
	builder.WriteString(record.Time.Format(TimeLayout))
	builder.WriteString(" [")
	builder.WriteString(record.Level.String())
	builder.WriteString("] ")
	builder.WriteString(record.Logger)
	builder.WriteByte(':')
	builder.WriteString(strconv.Itoa(record.Line))
	builder.WriteString(" - ")
	builder.WriteString(record.Message)
	return builder.String()
}

// componentMessage renders the message body built by a Component:
// "[TAG] YYYY-MM-DD HH:MM:SS | name | message[ | fields]".
func componentMessage(tag string, now time.Time, name, message string, fields Fields) string {
	msg := "[" + tag + "] " + now.Format(TimeLayout) + fieldSeparator + name + fieldSeparator + message
	if extra := fields.String(); extra != "" {
		msg += fieldSeparator + extra
	}
	return msg
}
