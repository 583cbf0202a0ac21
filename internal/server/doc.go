// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server exposes the logging sink activity over HTTP.
// It sets up a Fiber application whose requests are logged through a sink component,
// and serves the health check and the Prometheus metrics of the sink.
package server
