// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config loads the logging sink settings from an optional YAML file and the
// OPENEVOLVE_* environment variables.
package config
