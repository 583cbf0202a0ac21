// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/info"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

const (
	statusRoutesPrefix = "/-/"
	healthzPath        = statusRoutesPrefix + "healthz"
	metricsPath        = statusRoutesPrefix + "metrics"
)

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// Server serves the status routes of the tool.
type Server struct {
	app       *fiber.App
	component *logger.Component
}

// NewServer builds the Fiber application. Every request outside the status routes is logged
// through component, and gatherer is exposed on the metrics route.
func NewServer(component *logger.Component, gatherer prometheus.Gatherer) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(logger.RequestMiddleware(component, []string{statusRoutesPrefix}))

	statusRoutes(app, gatherer)

	return &Server{
		app:       app,
		component: component,
	}
}

func statusRoutes(app *fiber.App, gatherer prometheus.Gatherer) {
	app.Get(healthzPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    info.AppName,
			"version": info.Version,
			"status":  "OK",
		})
	})
	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on address until the server is stopped.
func (s *Server) Start(address string) error {
	s.component.Step("server listening", "address", address)
	if err := s.app.Listen(address); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	s.component.Info("server stopped")
	return nil
}

// Run starts the server and stops it when ctx is done.
func (s *Server) Run(ctx context.Context, address string) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(address)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	if err := s.Stop(context.WithoutCancel(ctx)); err != nil {
		return err
	}
	return <-errChan
}
