package paws

import (
	"strings"
	"time"

	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/tidwall/gjson"
)

// normalizeUser never fails: every absent field becomes its zero value,
// except the wallet which stays nil until one is linked.
func normalizeUser(raw gjson.Result) domain.AccountProfile {
	user := raw.Get("userData")
	allocation := raw.Get("allocationData")

	username := strings.TrimSpace(user.Get("username").String())
	if username == "" {
		username = strings.TrimSpace(user.Get("firstname").String())
	}

	return domain.AccountProfile{
		UserID:   user.Get("userId").String(),
		Username: username,
		Balance:  raw.Get("gameData.balance").Float(),
		Wallet:   walletAddress(user.Get("wallet")),
		ClaimStreak: domain.ClaimStreak{
			CurrentStreak: int(raw.Get("claimStreakData.currentStreak").Int()),
			LastClaimDate: parseServiceTime(raw.Get("claimStreakData.lastClaimDate")),
		},
		Allocation: domain.AllocationSummary{
			Hamster: domain.HamsterAllocation{
				Initial:   allocation.Get("hamster.initial").Float(),
				Converted: allocation.Get("hamster.converted").Float(),
			},
			Telegram: domain.TelegramAllocation{
				Premium: allocation.Get("telegram.premium").Float(),
				Year:    allocation.Get("telegram.year").Float(),
				Month:   allocation.Get("telegram.month").Float(),
				Total:   allocation.Get("telegram.total").Float(),
			},
			Paws: domain.PawsAllocation{
				Initial:   allocation.Get("paws.initial").Float(),
				Converted: allocation.Get("paws.converted").Float(),
			},
			Dogs: domain.DogsAllocation{
				Initial:   allocation.Get("dogs.initial").Float(),
				Converted: allocation.Get("dogs.converted").Float(),
				Percent:   allocation.Get("dogs.percent").Float(),
			},
			Notcoin: domain.NotcoinAllocation{
				Initial:   allocation.Get("notcoin.initial").Float(),
				Converted: allocation.Get("notcoin.converted").Float(),
				Percent:   allocation.Get("notcoin.percent").Float(),
			},
			Total: allocation.Get("total").Float(),
		},
	}
}

func walletAddress(value gjson.Result) *string {
	if value.Type != gjson.String {
		return nil
	}

	address := strings.TrimSpace(value.Str)
	if address == "" {
		return nil
	}
	return &address
}

// parseServiceTime accepts RFC3339 strings and epoch milliseconds.
func parseServiceTime(value gjson.Result) time.Time {
	switch value.Type {
	case gjson.Number:
		if value.Int() <= 0 {
			return time.Time{}
		}
		return time.UnixMilli(value.Int()).UTC()
	case gjson.String:
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value.Str))
		if err != nil {
			return time.Time{}
		}
		return parsed.UTC()
	default:
		return time.Time{}
	}
}

func normalizeQuests(raw gjson.Result) []domain.Quest {
	items := raw.Array()
	quests := make([]domain.Quest, 0, len(items))
	for _, item := range items {
		id := item.Get("_id").String()
		if id == "" {
			id = item.Get("id").String()
		}
		if id == "" {
			continue
		}

		rewards := make([]domain.QuestReward, 0)
		for _, reward := range item.Get("rewards").Array() {
			rewards = append(rewards, domain.QuestReward{
				Amount: reward.Get("amount").Float(),
				Type:   reward.Get("type").String(),
			})
		}

		quests = append(quests, domain.Quest{
			ID:      id,
			Title:   item.Get("title").String(),
			Rewards: rewards,
			Progress: domain.QuestProgress{
				Claimed: item.Get("progress.claimed").Bool(),
				Current: int(item.Get("progress.current").Int()),
				Total:   int(item.Get("progress.total").Int()),
				Status:  item.Get("progress.status").String(),
			},
		})
	}

	return quests
}
