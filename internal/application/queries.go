package application

import (
	"github.com/bnema/paws-quests-cli/internal/domain"
)

type QuestResult struct {
	Quest  domain.Quest
	State  domain.QuestState
	Reward string
	Err    error
}

type QuestReport struct {
	Results []QuestResult
}

func (r QuestReport) Count(state domain.QuestState) int {
	count := 0
	for _, result := range r.Results {
		if result.State == state {
			count++
		}
	}
	return count
}

type AccountReport struct {
	Index      int
	UserID     domain.UserID
	Name       string
	Skipped    bool
	Err        error
	Profile    *domain.AccountProfile
	ProfileErr error
	Wallet     WalletOutcome
	WalletErr  error
	Quests     QuestReport
	QuestsErr  error
}

type CycleReport struct {
	ID       string
	Accounts []AccountReport
}

func (r CycleReport) Processed() int {
	count := 0
	for _, account := range r.Accounts {
		if !account.Skipped {
			count++
		}
	}
	return count
}

func (r CycleReport) Skipped() int {
	return len(r.Accounts) - r.Processed()
}

func (r CycleReport) QuestCount(state domain.QuestState) int {
	count := 0
	for _, account := range r.Accounts {
		count += account.Quests.Count(state)
	}
	return count
}

// AccountView is the read-only result of the profile and quests commands.
type AccountView struct {
	Index      int
	Credential domain.AccountCredential
	Profile    domain.AccountProfile
	Quests     []domain.Quest
	Err        error
}
