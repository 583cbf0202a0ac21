// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/config"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/server"
)

// serveOptions configures the HTTP server run.
type serveOptions struct {
	address string
	name    string
	config  *config.Config

	console io.Writer
}

// execute configures a sink counting its lines on a new registry and serves until ctx is done.
func (o *serveOptions) execute(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName("serve")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics, err := logger.NewMetrics(registry)
	if err != nil {
		return err
	}

	sink, err := o.config.NewSink(o.console, logger.WithMetrics(metrics))
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Warn("closing logging sink", "error", err)
		}
	}()

	log.Info("starting server", "address", o.address, "logFile", sink.FilePath())
	srv := server.NewServer(logger.NewComponent(sink, o.name), registry)
	return srv.Run(ctx, o.address)
}
