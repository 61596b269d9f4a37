package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/paws-quests-cli/internal/application"
	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type RenderOptions struct {
	Now      time.Time
	Language language.Tag
}

func renderProfiles(views []application.AccountView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("PAWS Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(views))),
	}

	if len(views) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	printer := newPrinter(opts)
	for _, view := range views {
		lines = append(lines, s.section.Render(renderProfile(view, opts, printer, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(view application.AccountView, opts RenderOptions, p *message.Printer, s styles) string {
	parts := []string{s.account.Render(accountTitle(view))}
	if view.Err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, append(parts, s.warning.Render("error: "+view.Err.Error()))...)
	}

	profile := view.Profile
	parts = append(parts,
		field(s, "balance", p.Sprintf("%v PAWS", decimal(profile.Balance))),
		field(s, "wallet", walletLabel(profile)),
		field(s, "streak", streakLabel(profile.ClaimStreak, opts.Now)),
		field(s, "allocation", allocationLabel(profile.Allocation, p)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderQuests(views []application.AccountView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("PAWS Quests"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(views))),
	}

	if len(views) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	printer := newPrinter(opts)
	for _, view := range views {
		parts := []string{s.account.Render(accountTitle(view))}
		switch {
		case view.Err != nil:
			parts = append(parts, s.warning.Render("error: "+view.Err.Error()))
		case len(view.Quests) == 0:
			parts = append(parts, s.empty.Render("No outstanding quests."))
		default:
			parts = append(parts, s.header.Render(fmt.Sprintf("outstanding: %d", len(view.Quests))))
			for _, quest := range view.Quests {
				parts = append(parts, questLine(quest, printer, s))
			}
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func questLine(quest domain.Quest, p *message.Printer, s styles) string {
	title := strings.TrimSpace(quest.Title)
	if title == "" {
		title = quest.ID
	}

	line := s.detail.Render("- "+title) + " " + s.muted.Render("["+quest.ID+"]")
	if rewards := rewardsLabel(quest.Rewards, p); rewards != "" {
		line += " " + s.key.Render(rewards)
	}
	if quest.Progress.Total > 0 {
		line += " " + s.muted.Render(fmt.Sprintf("(%d/%d)", quest.Progress.Current, quest.Progress.Total))
	}
	return line
}

func field(s styles, key, value string) string {
	return s.key.Render(key+":") + " " + s.detail.Render(value)
}

func accountTitle(view application.AccountView) string {
	name := strings.TrimSpace(view.Profile.Username)
	if name == "" {
		name = view.Credential.DisplayName
	}

	id := view.Credential.UserID
	switch {
	case name != "" && id != "":
		return fmt.Sprintf("%s (%s)", name, id)
	case name != "":
		return name
	default:
		return fmt.Sprintf("account %d", view.Index+1)
	}
}

func walletLabel(profile domain.AccountProfile) string {
	if !profile.HasWallet() {
		return "not linked"
	}
	return *profile.Wallet
}

func streakLabel(streak domain.ClaimStreak, now time.Time) string {
	days := "days"
	if streak.CurrentStreak == 1 {
		days = "day"
	}
	label := fmt.Sprintf("%d %s", streak.CurrentStreak, days)

	if streak.LastClaimDate.IsZero() {
		return label + " (never claimed)"
	}
	if now.IsZero() {
		now = time.Now()
	}
	return fmt.Sprintf("%s (last claim %s)", label, humanize.RelTime(streak.LastClaimDate, now, "ago", "from now"))
}

func allocationLabel(a domain.AllocationSummary, p *message.Printer) string {
	return strings.Join([]string{
		p.Sprintf("total %v", decimal(a.Total)),
		p.Sprintf("hamster %v/%v", decimal(a.Hamster.Initial), decimal(a.Hamster.Converted)),
		p.Sprintf("telegram %v", decimal(a.Telegram.Total)),
		p.Sprintf("paws %v/%v", decimal(a.Paws.Initial), decimal(a.Paws.Converted)),
		p.Sprintf("dogs %v/%v (%v%%)", decimal(a.Dogs.Initial), decimal(a.Dogs.Converted), decimal(a.Dogs.Percent)),
		p.Sprintf("notcoin %v/%v (%v%%)", decimal(a.Notcoin.Initial), decimal(a.Notcoin.Converted), decimal(a.Notcoin.Percent)),
	}, " | ")
}

func rewardsLabel(rewards []domain.QuestReward, p *message.Printer) string {
	labels := make([]string, 0, len(rewards))
	for _, reward := range rewards {
		labels = append(labels, p.Sprintf("+%v %s", decimal(reward.Amount), reward.Type))
	}
	return strings.Join(labels, ", ")
}

func decimal(v float64) number.Formatter {
	return number.Decimal(v, number.MaxFractionDigits(2))
}

func newPrinter(opts RenderOptions) *message.Printer {
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
