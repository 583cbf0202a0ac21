// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

// WithContext returns a new context with the provided logger.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext retrieves the logger from the context. If no logger is found, a new null logger is returned.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(Logger); ok {
			return logger
		}
	}

	return nullLogger
}

// WithSink returns a new context carrying sink.
func WithSink(ctx context.Context, sink *Sink) context.Context {
	return context.WithValue(ctx, sinkContextKey, sink)
}

// SinkFromContext retrieves the sink from the context. If no sink is found, a new sink without
// destinations is returned; it is never shared with other callers.
func SinkFromContext(ctx context.Context) *Sink {
	if ctx != nil {
		if sink, ok := ctx.Value(sinkContextKey).(*Sink); ok && sink != nil {
			return sink
		}
	}

	return NewSink()
}

// WithComponent returns a new context carrying component.
func WithComponent(ctx context.Context, component *Component) context.Context {
	return context.WithValue(ctx, componentContextKey, component)
}

// ComponentFromContext retrieves the component from the context. If no component is found,
// a default named component bound to the sink in the context is returned.
func ComponentFromContext(ctx context.Context) *Component {
	if ctx != nil {
		if component, ok := ctx.Value(componentContextKey).(*Component); ok && component != nil {
			return component
		}
	}

	return NewComponent(SinkFromContext(ctx), "")
}

// Unexported new types so that our context keys never collide with another.
type contextKeyType struct{}
type sinkContextKeyType struct{}
type componentContextKeyType struct{}

// contextKey is the key used for the context to store the logger.
var contextKey = contextKeyType{}

// sinkContextKey is the key used for the context to store the sink.
var sinkContextKey = sinkContextKeyType{}

// componentContextKey is the key used for the context to store the component.
var componentContextKey = componentContextKeyType{}
