package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	profileadapter "github.com/bnema/paws-quests-cli/internal/adapters/render/profile"
	"github.com/bnema/paws-quests-cli/internal/application"
	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type accountDocument struct {
	Account int                    `json:"account" yaml:"account"`
	UserID  domain.UserID          `json:"userId,omitempty" yaml:"user_id,omitempty"`
	Name    string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Profile *domain.AccountProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Quests  []domain.Quest         `json:"quests,omitempty" yaml:"quests,omitempty"`
	Error   string                 `json:"error,omitempty" yaml:"error,omitempty"`
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Log in each account and show its profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			accounts, err := app.source.Credentials(cmd.Context())
			if err != nil {
				return fmt.Errorf("load accounts: %w", err)
			}

			views := app.orchestrator.Profiles(cmd.Context(), accounts)
			return writeViews(cmd, views, format, true, app.profileRenderer, app)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")

	return cmd
}

func newQuestsCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List each account's outstanding quests without completing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			app, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}

			accounts, err := app.source.Credentials(cmd.Context())
			if err != nil {
				return fmt.Errorf("load accounts: %w", err)
			}

			views := app.orchestrator.OutstandingQuests(cmd.Context(), accounts)
			return writeViews(cmd, views, format, false, app.questsRenderer, app)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")

	return cmd
}

func writeViews(cmd *cobra.Command, views []application.AccountView, format string, withProfile bool, render func([]application.AccountView, profileadapter.RenderOptions) (string, error), app *app) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(accountDocuments(views, withProfile))
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(accountDocuments(views, withProfile)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	rendered, err := render(views, profileadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render accounts: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func accountDocuments(views []application.AccountView, withProfile bool) []accountDocument {
	docs := make([]accountDocument, 0, len(views))
	for _, view := range views {
		doc := accountDocument{
			Account: view.Index + 1,
			UserID:  view.Credential.UserID,
			Name:    view.Credential.DisplayName,
		}
		switch {
		case view.Err != nil:
			doc.Error = view.Err.Error()
		case withProfile:
			profile := view.Profile
			doc.Profile = &profile
		default:
			doc.Quests = view.Quests
		}
		docs = append(docs, doc)
	}
	return docs
}

func validateFormat(format string, allowed ...string) error {
	for _, candidate := range allowed {
		if format == candidate {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want %s)", format, strings.Join(allowed, ", "))
}
