package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orchestratorFixture struct {
	api          *mocks.MockPawsAPI
	store        *mocks.MockTokenStore
	clock        *mocks.MockClock
	orchestrator *Orchestrator
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()

	api := mocks.NewMockPawsAPI(t)
	store := mocks.NewMockTokenStore(t)
	clock := mocks.NewMockClock(t)
	pacing := Pacing{QuestDelay: 2 * time.Second, AccountDelay: time.Second, CycleInterval: 24 * time.Hour}

	orchestrator := NewOrchestrator(
		api,
		NewSessionService(api, store, clock, nil),
		NewWalletService(api, nil),
		NewQuestService(api, clock, pacing.QuestDelay, nil),
		clock,
		pacing,
		nil,
	)

	return &orchestratorFixture{api: api, store: store, clock: clock, orchestrator: orchestrator}
}

func (f *orchestratorFixture) expectLogin(userID string, token domain.Token) {
	f.store.EXPECT().Lookup(domain.UserID(userID)).Return("", false).Once()
	f.api.EXPECT().Authenticate(mockAnyContext(), testBlob(userID)).Return(token, domain.AccountProfile{UserID: userID}, nil).Once()
	f.store.EXPECT().Save(mockAnyContext(), domain.UserID(userID), token).Return(nil).Once()
}

func (f *orchestratorFixture) expectNoQuests(token domain.Token) {
	f.api.EXPECT().ListQuests(mockAnyContext(), token).Return([]domain.Quest{}, nil).Once()
}

func TestOrchestratorRejectsMismatchedInputsBeforeAnyCall(t *testing.T) {
	f := newOrchestratorFixture(t)

	accounts := []string{testBlob("1"), testBlob("2"), testBlob("3")}
	wallets := []string{"UQBa", "UQBb"}

	_, err := f.orchestrator.RunCycle(context.Background(), accounts, wallets)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)

	var configErr *domain.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Contains(t, configErr.Reason, "account count (3) does not match wallet count (2)")

	source := mocks.NewMockAccountSource(t)
	source.EXPECT().Credentials(mockAnyContext()).Return(accounts, nil)
	source.EXPECT().Wallets(mockAnyContext()).Return(wallets, nil)

	err = f.orchestrator.Run(context.Background(), source, RunOptions{Once: true})
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestOrchestratorRunsEachAccountAndLinksOnlyUnsetWallets(t *testing.T) {
	f := newOrchestratorFixture(t)

	linked := "UQBexisting"
	f.expectLogin("1", "token-1")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-1")).Return(domain.AccountProfile{UserID: "1", Wallet: &linked}, nil).Once()
	f.expectNoQuests("token-1")

	f.expectLogin("2", "token-2")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-2")).Return(domain.AccountProfile{UserID: "2"}, nil).Once()
	f.api.EXPECT().LinkWallet(mockAnyContext(), domain.Token("token-2"), "UQBsecond").Return(nil).Once()
	f.expectNoQuests("token-2")

	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(nil).Once()

	report, err := f.orchestrator.RunCycle(context.Background(), []string{testBlob("1"), testBlob("2")}, []string{"UQBfirst", "UQBsecond"})
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	require.NoError(t, err)
	require.Len(t, report.Accounts, 2)
	assert.Equal(t, WalletAlreadyLinked, report.Accounts[0].Wallet)
	assert.Equal(t, WalletLinked, report.Accounts[1].Wallet)
	assert.Equal(t, 2, report.Processed())
	assert.Zero(t, report.Skipped())
}

func TestOrchestratorSkipsOnlyAccountsThatFail(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.store.EXPECT().Lookup(domain.UserID("1")).Return("", false).Once()
	f.api.EXPECT().Authenticate(mockAnyContext(), testBlob("1")).Return("", domain.AccountProfile{}, domain.ErrAuth).Once()

	f.expectLogin("3", "token-3")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-3")).Return(domain.AccountProfile{UserID: "3"}, nil).Once()
	f.api.EXPECT().LinkWallet(mockAnyContext(), domain.Token("token-3"), "UQBthird").Return(nil).Once()
	f.expectNoQuests("token-3")

	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return(nil).Times(2)

	accounts := []string{testBlob("1"), "query_id=broken", testBlob("3")}
	report, err := f.orchestrator.RunCycle(context.Background(), accounts, []string{"UQBfirst", "UQBsecond", "UQBthird"})
	require.NoError(t, err)

	require.Len(t, report.Accounts, 3)
	assert.True(t, report.Accounts[0].Skipped)
	assert.ErrorIs(t, report.Accounts[0].Err, domain.ErrAuth)
	assert.True(t, report.Accounts[1].Skipped)
	assert.ErrorIs(t, report.Accounts[1].Err, domain.ErrMalformedCredential)
	assert.False(t, report.Accounts[2].Skipped)
	assert.Equal(t, 1, report.Processed())
	assert.Equal(t, 2, report.Skipped())
}

func TestOrchestratorQuestsContinueWhenProfileFails(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.expectLogin("1", "token-1")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-1")).Return(domain.AccountProfile{}, domain.ErrProfile).Once()
	f.api.EXPECT().ListQuests(mockAnyContext(), domain.Token("token-1")).Return([]domain.Quest{{ID: "q1"}}, nil).Once()
	f.api.EXPECT().CompleteQuest(mockAnyContext(), domain.Token("token-1"), "q1").
		Return(domain.CompletionResponse{StatusCode: 201, Success: true}, nil).Once()

	report, err := f.orchestrator.RunCycle(context.Background(), []string{testBlob("1")}, []string{"UQBfirst"})
	require.NoError(t, err)

	require.Len(t, report.Accounts, 1)
	account := report.Accounts[0]
	assert.ErrorIs(t, account.ProfileErr, domain.ErrProfile)
	assert.Nil(t, account.Profile)
	assert.Empty(t, account.Wallet)
	assert.Equal(t, 1, report.QuestCount(domain.QuestCompleted))
}

func TestOrchestratorRunOnceLoadsCacheAndStops(t *testing.T) {
	f := newOrchestratorFixture(t)

	source := mocks.NewMockAccountSource(t)
	source.EXPECT().Credentials(mockAnyContext()).Return([]string{testBlob("1")}, nil)
	source.EXPECT().Wallets(mockAnyContext()).Return([]string{"UQBfirst"}, nil)
	f.store.EXPECT().Load(mockAnyContext()).Return(map[domain.UserID]domain.Token{}, nil).Once()

	f.expectLogin("1", "token-1")
	linked := "UQBfirst"
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-1")).Return(domain.AccountProfile{UserID: "1", Wallet: &linked}, nil).Once()
	f.expectNoQuests("token-1")

	waited := false
	err := f.orchestrator.Run(context.Background(), source, RunOptions{
		Once: true,
		Wait: func(context.Context, time.Duration) error {
			waited = true
			return nil
		},
	})
	require.NoError(t, err)
	assert.False(t, waited)
}

func TestOrchestratorRunRepeatsCyclesUntilCancelled(t *testing.T) {
	f := newOrchestratorFixture(t)

	source := mocks.NewMockAccountSource(t)
	source.EXPECT().Credentials(mockAnyContext()).Return([]string{testBlob("1")}, nil).Once()
	source.EXPECT().Wallets(mockAnyContext()).Return([]string{"UQBfirst"}, nil).Once()
	f.store.EXPECT().Load(mockAnyContext()).Return(map[domain.UserID]domain.Token{}, nil).Once()

	cached := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	f.store.EXPECT().Lookup(domain.UserID("1")).Return(cached, true).Times(2)
	f.clock.EXPECT().Now().Return(time.Now()).Times(2)
	linked := "UQBfirst"
	f.api.EXPECT().GetProfile(mockAnyContext(), cached).Return(domain.AccountProfile{UserID: "1", Wallet: &linked}, nil).Times(2)
	f.api.EXPECT().ListQuests(mockAnyContext(), cached).Return([]domain.Quest{}, nil).Times(2)

	var waits []time.Duration
	err := f.orchestrator.Run(context.Background(), source, RunOptions{
		Wait: func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			if len(waits) == 2 {
				return context.Canceled
			}
			return nil
		},
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []time.Duration{24 * time.Hour, 24 * time.Hour}, waits)
}

func TestOrchestratorRunReportsInputErrors(t *testing.T) {
	f := newOrchestratorFixture(t)

	source := mocks.NewMockAccountSource(t)
	source.EXPECT().Credentials(mockAnyContext()).Return(nil, errors.New("accounts file \"data.txt\" not found"))

	err := f.orchestrator.Run(context.Background(), source, RunOptions{Once: true})
	require.Error(t, err)
	assert.ErrorContains(t, err, "load accounts")
}

func TestOrchestratorStopsCycleWhenContextCancelled(t *testing.T) {
	f := newOrchestratorFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	linked := "UQBfirst"
	f.expectLogin("1", "token-1")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-1")).Return(domain.AccountProfile{UserID: "1", Wallet: &linked}, nil).Once()
	f.expectNoQuests("token-1")
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).
		RunAndReturn(func(context.Context, time.Duration) error {
			cancel()
			return context.Canceled
		}).Once()

	report, err := f.orchestrator.RunCycle(ctx, []string{testBlob("1"), testBlob("2")}, []string{"UQBfirst", "UQBsecond"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, report.Accounts, 1)
}

func TestOrchestratorInspectionQueries(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.store.EXPECT().Load(mockAnyContext()).Return(map[domain.UserID]domain.Token{}, nil).Times(2)
	f.expectLogin("1", "token-1")
	f.api.EXPECT().GetProfile(mockAnyContext(), domain.Token("token-1")).Return(domain.AccountProfile{UserID: "1", Username: "ada"}, nil).Once()

	views := f.orchestrator.Profiles(context.Background(), []string{testBlob("1"), "garbage"})
	require.Len(t, views, 2)
	assert.Equal(t, "ada", views[0].Profile.Username)
	assert.NoError(t, views[0].Err)
	assert.ErrorIs(t, views[1].Err, domain.ErrMalformedCredential)

	f.expectLogin("2", "token-2")
	f.api.EXPECT().ListQuests(mockAnyContext(), domain.Token("token-2")).Return([]domain.Quest{
		{ID: "q1"},
		{ID: "q2", Progress: domain.QuestProgress{Claimed: true}},
	}, nil).Once()

	views = f.orchestrator.OutstandingQuests(context.Background(), []string{testBlob("2")})
	require.Len(t, views, 1)
	require.Len(t, views[0].Quests, 1)
	assert.Equal(t, "q1", views[0].Quests[0].ID)
	assert.Equal(t, domain.UserID("2"), views[0].Credential.UserID)
}
