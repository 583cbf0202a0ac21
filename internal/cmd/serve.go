// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "serve the health check and the metrics of the logging sink"
	serveCmdLong  = `Configure the logging sink and start an HTTP server until interrupted.

	Every request is written to the sink as a STEP line when it comes in and an
	INFO line when it completes, both tagged with the request id. The status routes
	are not logged:
	- /-/healthz: health check
	- /-/metrics: Prometheus metrics of the sink, lines written and dropped by level`

	serveCmdExample = `# Serve on port 3000 writing request lines to a new log file
	openevolve-log serve --log-dir ./logs --address :3000`

	addressFlagName    = "address"
	addressFlagShort   = "a"
	addressFlagUsage   = "Address the HTTP server listens on"
	defaultAddress     = ":3000"
	defaultServiceName = "http"
)

// ServeCmd returns the Cobra command that starts the HTTP server.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := opts.execute(ctx); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// serveFlags collects the CLI options of the serve command.
type serveFlags struct {
	sinkFlags

	address string
}

// addFlags registers the CLI flags on cmd.
func (f *serveFlags) addFlags(cmd *cobra.Command) {
	f.sinkFlags.addFlags(cmd, defaultServiceName)
	cmd.Flags().StringVarP(&f.address, addressFlagName, addressFlagShort, defaultAddress, addressFlagUsage)
}

// toOptions builds a serveOptions instance from the parsed flags.
func (f *serveFlags) toOptions(cmd *cobra.Command) (*serveOptions, error) {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return &serveOptions{
		address: f.address,
		name:    f.name,
		config:  cfg,
		console: cmd.ErrOrStderr(),
	}, nil
}
