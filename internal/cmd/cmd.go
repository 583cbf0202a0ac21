// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	emitCmdUsageTemplate = "emit [%s] MESSAGE"
	emitCmdShort         = "write a single line to the openevolve log"
	emitCmdLong          = `Configure the logging sink and write a single line through a named component.

	The sink is configured from the optional configuration file, then from the
	OPENEVOLVE_LOG_* environment variables and finally from the flags. When a log
	directory is set a new openevolve_<YYYYMMDD_HHMMSS>.log file is created inside it
	and its path is printed on stdout.

	The available kinds are:
	- debug, info, warning, error, critical: the matching severity
	- step: a STEP line written at info severity`

	emitCmdExample = `# Write a step line with context to a new log file
	openevolve-log emit step build --log-dir ./logs --field n=3

	# Write a warning on the console, using a component name
	openevolve-log emit warning "low fitness" --console --name Evaluator`
)

// EmitCmd returns the Cobra command that writes a single line through a component.
func EmitCmd() *cobra.Command {
	flags := &flags{}
	allKinds := slices.Sorted(maps.Keys(availableKinds))
	cmd := &cobra.Command{
		Use:     fmt.Sprintf(emitCmdUsageTemplate, strings.Join(allKinds, "|")),
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(availableKinds),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
