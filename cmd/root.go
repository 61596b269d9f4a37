package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
	logFormat  string
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "paws",
		Short:         "PAWS quests CLI (paws): keep accounts logged in and quests claimed",
		Long:          "paws logs every configured account in, links its wallet once, and completes and claims outstanding quests, repeating the batch every cycle.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default paws.toml in the working or user config directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text, json or logfmt")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(opts),
		newProfileCmd(opts),
		newQuestsCmd(opts),
		newTokensCmd(opts),
	)

	return rootCmd
}
