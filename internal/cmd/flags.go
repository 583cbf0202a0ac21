// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/config"
	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

const (
	configPathFlagName  = "config"
	configPathFlagShort = "c"
	configPathFlagUsage = "Path to a YAML file with the logging configuration"

	logDirFlagName  = "log-dir"
	logDirFlagShort = "d"
	logDirFlagUsage = "Directory where the log file is created, no file is written when empty"

	levelFlagName  = "level"
	levelFlagShort = "l"
	levelFlagUsage = "Minimum severity written by the sink (DEBUG, INFO, WARNING, ERROR, CRITICAL)"

	consoleFlagName  = "console"
	consoleFlagUsage = "If set, also writes the line to stderr"

	nameFlagName  = "name"
	nameFlagShort = "n"
	nameFlagUsage = "Component name embedded in the line"

	fieldFlagName  = "field"
	fieldFlagShort = "f"
	fieldFlagUsage = "Extra context in key=value form. Can be specified multiple times."

	runIDFlagName  = "run-id"
	runIDFlagUsage = "Adds a run_id context value, use 'auto' to generate a random one"

	autoRunID = "auto"
	runIDKey  = "run_id"
)

// sinkFlags collects the CLI options shared by every command that configures a sink.
type sinkFlags struct {
	configPath string
	logDir     string
	level      string
	console    bool
	name       string
}

// addFlags registers the sink flags on cmd, defaultName is the default component name.
func (f *sinkFlags) addFlags(cmd *cobra.Command, defaultName string) {
	cmd.Flags().StringVarP(&f.configPath, configPathFlagName, configPathFlagShort, "", configPathFlagUsage)
	cmd.Flags().StringVarP(&f.logDir, logDirFlagName, logDirFlagShort, "", logDirFlagUsage)
	cmd.Flags().StringVarP(&f.level, levelFlagName, levelFlagShort, logger.DEBUG.String(), levelFlagUsage)
	cmd.Flags().BoolVar(&f.console, consoleFlagName, false, consoleFlagUsage)
	cmd.Flags().StringVarP(&f.name, nameFlagName, nameFlagShort, defaultName, nameFlagUsage)
}

// loadConfig loads the configuration file and environment, then applies the flags set by the user.
func (f *sinkFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed(logDirFlagName) {
		cfg.LogDir = f.logDir
	}
	if changed(levelFlagName) {
		cfg.LogLevel = f.level
	}
	if changed(consoleFlagName) {
		cfg.Console = f.console
	}

	return cfg, nil
}

// flags collects the CLI options of the emit command.
type flags struct {
	sinkFlags

	fields []string
	runID  string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	f.sinkFlags.addFlags(cmd, logger.DefaultComponentName)
	cmd.Flags().StringArrayVarP(&f.fields, fieldFlagName, fieldFlagShort, nil, fieldFlagUsage)
	cmd.Flags().StringVar(&f.runID, runIDFlagName, "", runIDFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
func (f *flags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}

	message := ""
	if len(args) > 1 {
		message = strings.Join(args[1:], " ")
	}

	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	fields, err := parseFields(f.fields)
	if err != nil {
		return nil, err
	}

	switch f.runID {
	case "":
	case autoRunID:
		fields = append([]any{runIDKey, uuid.NewString()}, fields...)
	default:
		fields = append([]any{runIDKey, f.runID}, fields...)
	}

	return &options{
		kind:    strings.ToLower(kind),
		message: message,
		name:    f.name,
		fields:  fields,
		config:  cfg,
		console: cmd.ErrOrStderr(),
		out:     cmd.OutOrStdout(),
	}, nil
}
