package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
)

const DefaultQuestDelay = 2 * time.Second

var errClaimRejected = errors.New("claim rejected")

type QuestService struct {
	api    ports.PawsAPI
	clock  ports.Clock
	delay  time.Duration
	logger *log.Logger
}

func NewQuestService(api ports.PawsAPI, clock ports.Clock, delay time.Duration, logger *log.Logger) *QuestService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &QuestService{
		api:    api,
		clock:  clock,
		delay:  delay,
		logger: logger,
	}
}

func (s *QuestService) Outstanding(ctx context.Context, token domain.Token) ([]domain.Quest, error) {
	quests, err := s.api.ListQuests(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrQuest) {
			err = fmt.Errorf("%w: %w", domain.ErrQuest, err)
		}
		return nil, err
	}

	return domain.OutstandingQuests(quests), nil
}

// ProcessQuests drives every unclaimed quest through complete and claim.
// One quest failing never stops the others; only a cancelled context does.
func (s *QuestService) ProcessQuests(ctx context.Context, token domain.Token) (QuestReport, error) {
	quests, err := s.Outstanding(ctx, token)
	if err != nil {
		return QuestReport{}, fmt.Errorf("list quests: %w", err)
	}

	report := QuestReport{Results: make([]QuestResult, 0, len(quests))}
	s.logger.Info("processing quests", "outstanding", len(quests))

	for i, quest := range quests {
		report.Results = append(report.Results, s.ProcessQuest(ctx, token, quest))

		if i == len(quests)-1 {
			break
		}
		if err := s.clock.Sleep(ctx, s.delay); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *QuestService) ProcessQuest(ctx context.Context, token domain.Token, quest domain.Quest) QuestResult {
	logger := s.logger.With("quest_id", quest.ID, "title", quest.Title)
	result := QuestResult{Quest: quest, State: domain.QuestListed}

	resp, err := s.api.CompleteQuest(ctx, token, quest.ID)
	if err != nil {
		result.State = domain.QuestFailed
		result.Err = err
		logger.Error("quest completion failed", "error", err)
		return result
	}

	result.State = domain.ClassifyCompletion(resp)
	switch result.State {
	case domain.QuestCompleted:
		result.Reward = string(resp.Data)
		logger.Info("quest completed", "reward", result.Reward)
	case domain.QuestSkipped:
		logger.Warn("quest requirements not met, skipping")
	case domain.QuestNeedsClaim:
		result = s.claim(ctx, token, result, logger)
	default:
		result.State = domain.QuestFailed
		result.Err = fmt.Errorf("%w: quest %s not accepted (status %d)", domain.ErrQuest, quest.ID, resp.StatusCode)
		logger.Error("quest completion rejected", "status", resp.StatusCode)
	}

	return result
}

func (s *QuestService) claim(ctx context.Context, token domain.Token, result QuestResult, logger *log.Logger) QuestResult {
	resp, err := s.api.ClaimQuest(ctx, token, result.Quest)
	if err != nil {
		result.State = domain.QuestFailed
		result.Err = err
		logger.Error("quest claim failed", "error", err)
		return result
	}

	if !resp.Truthy() {
		result.State = domain.QuestFailed
		result.Err = fmt.Errorf("%w: quest %s: %w", domain.ErrQuest, result.Quest.ID, errClaimRejected)
		logger.Error("quest claim rejected")
		return result
	}

	result.State = domain.QuestDone
	logger.Info("quest claimed")
	return result
}
