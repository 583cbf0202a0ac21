// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger owns the shared logging sink and the per-component façades that write to it.
// A Sink is configured once at startup with a severity threshold and an optional timestamped
// log file; Components format their messages with a component name and key/value context and
// forward them to the sink. The package also carries the hclog-backed diagnostic Logger used by
// the command line tool itself, and context helpers for both.
package logger
