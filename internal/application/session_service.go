package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
)

type SessionService struct {
	api    ports.PawsAPI
	store  ports.TokenStore
	clock  ports.Clock
	logger *log.Logger
}

func NewSessionService(api ports.PawsAPI, store ports.TokenStore, clock ports.Clock, logger *log.Logger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &SessionService{
		api:    api,
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// LoadCache primes the token store from disk. An unreadable cache only costs
// extra logins, so the error is logged and the run continues.
func (s *SessionService) LoadCache(ctx context.Context) int {
	tokens, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("token cache unavailable, every account will log in", "error", err)
		return 0
	}

	s.logger.Debug("token cache loaded", "tokens", len(tokens))
	return len(tokens)
}

func (s *SessionService) EnsureValidToken(ctx context.Context, cred domain.AccountCredential) (domain.Token, error) {
	logger := s.logger.With("user_id", cred.UserID)

	if token, ok := s.store.Lookup(cred.UserID); ok && token != "" {
		if !token.IsExpired(s.clock.Now()) {
			logger.Debug("using cached token")
			return token, nil
		}
		logger.Info("cached token expired, logging in again")
	} else {
		logger.Debug("no cached token, logging in")
	}

	token, _, err := s.api.Authenticate(ctx, cred.Raw)
	if err != nil {
		if !errors.Is(err, domain.ErrAuth) {
			err = fmt.Errorf("%w: %w", domain.ErrAuth, err)
		}
		return "", fmt.Errorf("authenticate %s: %w", cred.DisplayName, err)
	}

	if err := s.store.Save(ctx, cred.UserID, token); err != nil {
		logger.Warn("persist token failed", "error", err)
	}
	logger.Info("logged in", "account", cred.DisplayName)

	return token, nil
}
