// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/config"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

// options configures a single emit run.
type options struct {
	kind    string
	message string
	name    string
	fields  []any
	config  *config.Config

	console io.Writer
	out     io.Writer
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if o.kind == "" {
		return errNoArguments
	}

	if _, ok := availableKinds[o.kind]; !ok {
		return fmt.Errorf("%w: %s", errInvalidKind, o.kind)
	}

	if o.message == "" {
		return errNoMessage
	}

	return nil
}

// execute configures the sink, writes the line and prints the log file path, if any.
func (o *options) execute(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName("emit")

	sink, err := o.config.NewSink(o.console)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Warn("closing logging sink", "error", err)
		}
	}()

	log.Debug("logging sink configured",
		"directory", o.config.LogDir,
		"level", sink.Level().String(),
		"destinations", sink.Destinations(),
	)

	emitLine(logger.WithSink(ctx, sink), o.kind, o.name, o.message, o.fields)

	if path := sink.FilePath(); path != "" {
		fmt.Fprintln(o.out, path)
	}
	return nil
}

// emitLine writes message through a component bound to the sink stored in ctx.
func emitLine(ctx context.Context, kind, name, message string, fields []any) {
	component := logger.NewComponent(logger.SinkFromContext(ctx), name)
	emitters[kind](component, message, fields...)
}
