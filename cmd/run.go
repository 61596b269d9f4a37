package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/paws-quests-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		once  bool
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process every account, then repeat each cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runOpts := application.RunOptions{Once: once}
			if !plain && isTerminal(cmd.ErrOrStderr()) {
				output := cmd.ErrOrStderr()
				runOpts.Wait = func(ctx context.Context, d time.Duration) error {
					return runCycleWaitSpinner(ctx, output, d)
				}
			}

			err = app.orchestrator.Run(ctx, app.source, runOpts)
			if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				app.logger.Info("shutting down")
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single cycle and exit")
	cmd.Flags().BoolVar(&plain, "plain", false, "never show the countdown spinner between cycles")

	return cmd
}
