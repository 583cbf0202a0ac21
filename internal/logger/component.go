// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"runtime"
	"strings"
)

const (
	// DefaultComponentName is used when a Component is created without a name.
	DefaultComponentName = "GraphNode"

	stepTag     = "STEP"
	unknownName = "unknown"

	// frames between runtime.Caller in callerLocation and the user code calling a Component method
	callerSkip = 3
)

// Component is a façade bound to a component name. Every call renders
// "[TAG] timestamp | name | message | k=v ..." and forwards it to the sink.
type Component struct {
	sink   *Sink
	name   string
	fields Fields
}

// NewComponent returns a Component writing to sink. A nil sink is replaced by a new sink
// without destinations, so everything is discarded.
func NewComponent(sink *Sink, name string) *Component {
	if sink == nil {
		sink = NewSink()
	}
	if name == "" {
		name = DefaultComponentName
	}

	return &Component{sink: sink, name: name}
}

// Name returns the component name embedded in every line.
func (c *Component) Name() string {
	return c.name
}

// With returns a Component that prepends args to the context of every call.
func (c *Component) With(args ...any) *Component {
	fields := make(Fields, 0, len(c.fields)+len(args)/2+1)
	fields = append(fields, c.fields...)
	fields = append(fields, FieldsFromArgs(args...)...)

	return &Component{sink: c.sink, name: c.name, fields: fields}
}

// Debug logs message at DEBUG level, args are alternating key/value pairs.
func (c *Component) Debug(message string, args ...any) {
	c.log(DEBUG, DEBUG.String(), message, args)
}

// Info logs message at INFO level.
func (c *Component) Info(message string, args ...any) {
	c.log(INFO, INFO.String(), message, args)
}

// Warning logs message at WARNING level.
func (c *Component) Warning(message string, args ...any) {
	c.log(WARNING, WARNING.String(), message, args)
}

// Error logs message at ERROR level.
func (c *Component) Error(message string, args ...any) {
	c.log(ERROR, ERROR.String(), message, args)
}

// Critical logs message at CRITICAL level.
func (c *Component) Critical(message string, args ...any) {
	c.log(CRITICAL, CRITICAL.String(), message, args)
}

// Step logs the start of a named step. It is tagged STEP and written at INFO level.
func (c *Component) Step(step string, args ...any) {
	c.log(INFO, stepTag, step, args)
}

func (c *Component) log(level Level, tag, message string, args []any) {
	fields := c.fields
	if len(args) > 0 {
		fields = append(fields[:len(fields):len(fields)], FieldsFromArgs(args...)...)
	}

	now := c.sink.now()
	loggerName, line := callerLocation()
	c.sink.Emit(Record{
		Time:    now,
		Level:   level,
		Logger:  loggerName,
		Line:    line,
		Message: componentMessage(tag, now, c.name, message, fields),
	})
}

// callerLocation returns the package and line of the code that called a Component method.
func callerLocation() (string, int) {
	pc, _, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return unknownName, 0
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownName, line
	}
	return packageName(fn.Name()), line
}

// packageName strips the function part from a fully qualified function name,
// "example.com/pkg.(*T).Method" becomes "example.com/pkg".
func packageName(funcName string) string {
	lastSlash := strings.LastIndex(funcName, "/")
	if dot := strings.Index(funcName[lastSlash+1:], "."); dot >= 0 {
		return funcName[:lastSlash+1+dot]
	}
	return funcName
}
