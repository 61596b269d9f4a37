package ports

import (
	"context"

	"github.com/bnema/paws-quests-cli/internal/domain"
)

type TokenStore interface {
	Load(ctx context.Context) (map[domain.UserID]domain.Token, error)
	Lookup(userID domain.UserID) (domain.Token, bool)
	Save(ctx context.Context, userID domain.UserID, token domain.Token) error
}
