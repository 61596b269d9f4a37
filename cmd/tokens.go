package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List cached tokens and when they expire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			if _, err := app.tokens.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load token cache: %w", err)
			}

			entries := app.tokens.Entries()
			if len(entries) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no cached tokens in %s\n", app.tokens.Path())
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{string(entry.UserID), tokenStatus(entry.Token, app.now())})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("USER ID", "STATUS").
				Rows(rows...)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func tokenStatus(token domain.Token, now time.Time) string {
	expiresAt, ok, err := token.ExpiresAt()
	switch {
	case err != nil:
		return "undecodable (will log in again)"
	case !ok:
		return "valid (no expiry)"
	case token.IsExpired(now):
		return fmt.Sprintf("expired %s", humanize.RelTime(expiresAt, now, "ago", "from now"))
	default:
		return fmt.Sprintf("valid, expires %s", humanize.RelTime(expiresAt, now, "ago", "from now"))
	}
}
