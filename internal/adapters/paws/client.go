package paws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/bnema/paws-quests-cli/internal/adapters/transport"
	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

const (
	authPath          = "/user/auth"
	userPath          = "/user"
	walletPath        = "/user/wallet"
	questsListPath    = "/quests/list"
	questCompletePath = "/quests/completed"
	questClaimPath    = "/quests/claim"
)

type Doer interface {
	Do(ctx context.Context, req transport.Request) (transport.Response, error)
}

type Client struct {
	transport    Doer
	referralCode string
	logger       *log.Logger
}

var _ ports.PawsAPI = (*Client)(nil)

type authRequest struct {
	Data         string `json:"data"`
	ReferralCode string `json:"referralCode"`
}

type walletRequest struct {
	Wallet string `json:"wallet"`
}

type questRequest struct {
	QuestID string `json:"questId"`
}

func NewClient(doer Doer, referralCode string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		transport:    doer,
		referralCode: referralCode,
		logger:       logger,
	}
}

// Authenticate exchanges an init-data blob for a bearer token. The success
// payload is a two element array: the token, then the raw user data.
func (c *Client) Authenticate(ctx context.Context, credential string) (domain.Token, domain.AccountProfile, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   authPath,
		Body:   authRequest{Data: credential, ReferralCode: c.referralCode},
	})
	if err != nil {
		return "", domain.AccountProfile{}, fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}

	envelope, err := decodeEnvelope(resp, http.StatusCreated)
	if err != nil {
		return "", domain.AccountProfile{}, fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}

	data := envelope.Get("data")
	token := strings.TrimSpace(data.Get("0").String())
	if token == "" {
		return "", domain.AccountProfile{}, fmt.Errorf("%w: auth response missing token", domain.ErrAuth)
	}

	profile := normalizeUser(data.Get("1"))
	c.logger.Debug("authenticated", "user_id", profile.UserID)

	return domain.Token(token), profile, nil
}

func (c *Client) GetProfile(ctx context.Context, token domain.Token) (domain.AccountProfile, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   userPath,
		Token:  token,
	})
	if err != nil {
		return domain.AccountProfile{}, fmt.Errorf("%w: %w", domain.ErrProfile, err)
	}

	envelope, err := decodeEnvelope(resp, http.StatusOK)
	if err != nil {
		return domain.AccountProfile{}, fmt.Errorf("%w: %w", domain.ErrProfile, err)
	}

	return normalizeUser(envelope.Get("data")), nil
}

func (c *Client) LinkWallet(ctx context.Context, token domain.Token, address string) error {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   walletPath,
		Body:   walletRequest{Wallet: address},
		Token:  token,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLink, err)
	}

	if _, err := decodeEnvelope(resp, http.StatusCreated); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLink, err)
	}

	return nil
}

func (c *Client) ListQuests(ctx context.Context, token domain.Token) ([]domain.Quest, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   questsListPath,
		Token:  token,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list quests: %w", domain.ErrQuest, err)
	}

	envelope, err := decodeEnvelope(resp, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("%w: list quests: %w", domain.ErrQuest, err)
	}

	quests := normalizeQuests(envelope.Get("data"))
	c.logger.Debug("listed quests", "count", len(quests))

	return quests, nil
}

// CompleteQuest returns the answer undecided; the engine owns the
// interpretation of the status, success flag and data combination.
func (c *Client) CompleteQuest(ctx context.Context, token domain.Token, questID string) (domain.CompletionResponse, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   questCompletePath,
		Body:   questRequest{QuestID: questID},
		Token:  token,
	})
	if err != nil {
		return domain.CompletionResponse{}, fmt.Errorf("%w: complete quest %s: %w", domain.ErrQuest, questID, err)
	}

	completion := domain.CompletionResponse{StatusCode: resp.StatusCode}
	if gjson.ValidBytes(resp.Body) {
		body := gjson.ParseBytes(resp.Body)
		switch body.Type {
		case gjson.True, gjson.False:
			completion.Data = []byte(body.Raw)
		default:
			completion.Success = body.Get("success").Bool()
			if data := body.Get("data"); data.Exists() {
				completion.Data = []byte(data.Raw)
			}
		}
	}

	return completion, nil
}

func (c *Client) ClaimQuest(ctx context.Context, token domain.Token, quest domain.Quest) (domain.ClaimResponse, error) {
	resp, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   questClaimPath,
		Body:   questRequest{QuestID: quest.ID},
		Token:  token,
	})
	if err != nil {
		return domain.ClaimResponse{}, fmt.Errorf("%w: claim quest %s: %w", domain.ErrQuest, quest.ID, err)
	}

	return domain.ClaimResponse{Raw: resp.Body}, nil
}

func decodeEnvelope(resp transport.Response, wantStatus ...int) (gjson.Result, error) {
	if !slices.Contains(wantStatus, resp.StatusCode) {
		return gjson.Result{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if !gjson.ValidBytes(resp.Body) {
		return gjson.Result{}, errors.New("decode response: invalid json body")
	}

	envelope := gjson.ParseBytes(resp.Body)
	if !envelope.Get("success").Bool() {
		if message := strings.TrimSpace(envelope.Get("error").String()); message != "" {
			return gjson.Result{}, fmt.Errorf("service reported failure: %s", message)
		}
		return gjson.Result{}, errors.New("service reported failure")
	}

	return envelope, nil
}
