package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
)

type WalletOutcome string

const (
	WalletAlreadyLinked WalletOutcome = "already_linked"
	WalletNoAddress     WalletOutcome = "no_address"
	WalletLinked        WalletOutcome = "linked"
)

type WalletService struct {
	api    ports.PawsAPI
	logger *log.Logger
}

func NewWalletService(api ports.PawsAPI, logger *log.Logger) *WalletService {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &WalletService{api: api, logger: logger}
}

// EnsureWallet links address unless the profile already carries a wallet.
// A wallet is never replaced once set.
func (s *WalletService) EnsureWallet(ctx context.Context, token domain.Token, profile domain.AccountProfile, address string) (WalletOutcome, error) {
	logger := s.logger.With("user_id", profile.UserID)

	if profile.HasWallet() {
		logger.Debug("wallet already linked", "wallet", *profile.Wallet)
		return WalletAlreadyLinked, nil
	}

	address = strings.TrimSpace(address)
	if address == "" {
		logger.Warn("no wallet address configured for account")
		return WalletNoAddress, nil
	}

	if err := s.api.LinkWallet(ctx, token, address); err != nil {
		if !errors.Is(err, domain.ErrLink) {
			err = fmt.Errorf("%w: %w", domain.ErrLink, err)
		}
		return "", fmt.Errorf("link wallet %s: %w", address, err)
	}

	logger.Info("wallet linked", "wallet", address)
	return WalletLinked, nil
}
