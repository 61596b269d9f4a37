package ports

import (
	"context"

	"github.com/bnema/paws-quests-cli/internal/domain"
)

type PawsAPI interface {
	Authenticate(ctx context.Context, credential string) (domain.Token, domain.AccountProfile, error)
	GetProfile(ctx context.Context, token domain.Token) (domain.AccountProfile, error)
	LinkWallet(ctx context.Context, token domain.Token, address string) error
	ListQuests(ctx context.Context, token domain.Token) ([]domain.Quest, error)
	CompleteQuest(ctx context.Context, token domain.Token, questID string) (domain.CompletionResponse, error)
	ClaimQuest(ctx context.Context, token domain.Token, quest domain.Quest) (domain.ClaimResponse, error)
}
