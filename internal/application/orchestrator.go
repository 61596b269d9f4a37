package application

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Orchestrator struct {
	api      ports.PawsAPI
	sessions *SessionService
	wallets  *WalletService
	quests   *QuestService
	clock    ports.Clock
	pacing   Pacing
	logger   *log.Logger
	newID    func() string
}

func NewOrchestrator(api ports.PawsAPI, sessions *SessionService, wallets *WalletService, quests *QuestService, clock ports.Clock, pacing Pacing, logger *log.Logger) *Orchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Orchestrator{
		api:      api,
		sessions: sessions,
		wallets:  wallets,
		quests:   quests,
		clock:    clock,
		pacing:   pacing,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Validate checks that every account has its positional wallet entry.
func (o *Orchestrator) Validate(accounts, wallets []string) error {
	if len(accounts) != len(wallets) {
		return &domain.ConfigError{
			Reason: fmt.Sprintf("account count (%d) does not match wallet count (%d)", len(accounts), len(wallets)),
		}
	}
	return nil
}

// Run loads the batch once and repeats it every cycle interval until ctx is
// done. It returns early only for input and configuration errors.
func (o *Orchestrator) Run(ctx context.Context, source ports.AccountSource, opts RunOptions) error {
	accounts, err := source.Credentials(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	wallets, err := source.Wallets(ctx)
	if err != nil {
		return fmt.Errorf("load wallets: %w", err)
	}
	if err := o.Validate(accounts, wallets); err != nil {
		return err
	}

	wait := opts.Wait
	if wait == nil {
		wait = o.clock.Sleep
	}

	o.sessions.LoadCache(ctx)

	for {
		if _, err := o.RunCycle(ctx, accounts, wallets); err != nil {
			return err
		}
		if opts.Once {
			return nil
		}

		o.logger.Info("waiting for next cycle", "interval", o.pacing.CycleInterval.String())
		if err := wait(ctx, o.pacing.CycleInterval); err != nil {
			return err
		}
	}
}

func (o *Orchestrator) RunCycle(ctx context.Context, accounts, wallets []string) (CycleReport, error) {
	if err := o.Validate(accounts, wallets); err != nil {
		return CycleReport{}, err
	}

	report := CycleReport{ID: o.newID(), Accounts: make([]AccountReport, 0, len(accounts))}
	logger := o.logger.With("cycle", report.ID)
	logger.Info("cycle started", "accounts", len(accounts))

	for i := range accounts {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Accounts = append(report.Accounts, o.processAccount(ctx, logger, i, accounts[i], wallets[i]))
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if i == len(accounts)-1 {
			break
		}
		if err := o.clock.Sleep(ctx, o.pacing.AccountDelay); err != nil {
			return report, err
		}
	}

	logger.Info("cycle finished",
		"processed", report.Processed(),
		"skipped", report.Skipped(),
		"completed", report.QuestCount(domain.QuestCompleted),
		"claimed", report.QuestCount(domain.QuestDone),
		"not_ready", report.QuestCount(domain.QuestSkipped),
		"failed", report.QuestCount(domain.QuestFailed),
	)

	return report, nil
}

func (o *Orchestrator) processAccount(ctx context.Context, logger *log.Logger, index int, raw, wallet string) AccountReport {
	report := AccountReport{Index: index}
	logger = logger.With("account", index+1)

	cred, err := domain.ParseCredential(raw)
	if err != nil {
		logger.Error("skipping account", "error", err)
		report.Skipped = true
		report.Err = err
		return report
	}
	report.UserID = cred.UserID
	report.Name = cred.DisplayName
	logger = logger.With("user_id", cred.UserID)

	token, err := o.sessions.EnsureValidToken(ctx, cred)
	if err != nil {
		logger.Error("skipping account", "error", err)
		report.Skipped = true
		report.Err = err
		return report
	}

	profile, err := o.api.GetProfile(ctx, token)
	if err != nil {
		logger.Error("profile unavailable, continuing with quests", "error", err)
		report.ProfileErr = err
	} else {
		report.Profile = &profile
		logger.Info("profile", "username", profile.Username, "balance", profile.Balance, "wallet", profile.HasWallet())

		report.Wallet, report.WalletErr = o.wallets.EnsureWallet(ctx, token, profile, wallet)
		if report.WalletErr != nil {
			logger.Error("wallet link failed", "error", report.WalletErr)
		}
	}

	report.Quests, report.QuestsErr = o.quests.ProcessQuests(ctx, token)
	if report.QuestsErr != nil && ctx.Err() == nil {
		logger.Error("quests unavailable", "error", report.QuestsErr)
	}

	return report
}

// Profiles authenticates each account and fetches its profile without
// touching wallets or quests.
func (o *Orchestrator) Profiles(ctx context.Context, accounts []string) []AccountView {
	return o.inspect(ctx, accounts, func(ctx context.Context, token domain.Token, view *AccountView) error {
		profile, err := o.api.GetProfile(ctx, token)
		if err != nil {
			return err
		}
		view.Profile = profile
		return nil
	})
}

// OutstandingQuests lists each account's unclaimed quests without acting on them.
func (o *Orchestrator) OutstandingQuests(ctx context.Context, accounts []string) []AccountView {
	return o.inspect(ctx, accounts, func(ctx context.Context, token domain.Token, view *AccountView) error {
		quests, err := o.quests.Outstanding(ctx, token)
		if err != nil {
			return err
		}
		view.Quests = quests
		return nil
	})
}

func (o *Orchestrator) inspect(ctx context.Context, accounts []string, fetch func(context.Context, domain.Token, *AccountView) error) []AccountView {
	o.sessions.LoadCache(ctx)

	views := make([]AccountView, 0, len(accounts))
	for i, raw := range accounts {
		if ctx.Err() != nil {
			break
		}

		view := AccountView{Index: i}
		cred, err := domain.ParseCredential(raw)
		if err != nil {
			view.Err = err
			views = append(views, view)
			continue
		}
		view.Credential = cred

		token, err := o.sessions.EnsureValidToken(ctx, cred)
		if err != nil {
			view.Err = err
			views = append(views, view)
			continue
		}

		view.Err = fetch(ctx, token, &view)
		views = append(views, view)
	}

	return views
}
