package domain

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

type Quest struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Rewards  []QuestReward `json:"rewards"`
	Progress QuestProgress `json:"progress"`
}

type QuestReward struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type QuestProgress struct {
	Claimed bool   `json:"claimed"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

func (q Quest) Outstanding() bool {
	return !q.Progress.Claimed
}

func OutstandingQuests(quests []Quest) []Quest {
	outstanding := make([]Quest, 0, len(quests))
	for _, quest := range quests {
		if quest.Outstanding() {
			outstanding = append(outstanding, quest)
		}
	}
	return outstanding
}

type QuestState string

const (
	QuestListed     QuestState = "listed"
	QuestCompleted  QuestState = "completed"
	QuestNeedsClaim QuestState = "needs_claim"
	QuestSkipped    QuestState = "skipped"
	QuestFailed     QuestState = "failed"
	QuestDone       QuestState = "done"
)

func (s QuestState) Terminal() bool {
	switch s {
	case QuestCompleted, QuestSkipped, QuestFailed, QuestDone:
		return true
	default:
		return false
	}
}

// CompletionResponse is the undecoded answer of the complete endpoint.
// Data keeps the raw "data" member because its type varies per quest.
type CompletionResponse struct {
	StatusCode int
	Success    bool
	Data       []byte
}

// ClassifyCompletion maps a completion answer to the next quest state.
// Branch order matters: a success flag wins over the data payload.
func ClassifyCompletion(resp CompletionResponse) QuestState {
	accepted := resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
	data := gjson.ParseBytes(resp.Data)

	switch {
	case accepted && resp.Success:
		return QuestCompleted
	case accepted && data.Type == gjson.True:
		return QuestNeedsClaim
	case data.Type == gjson.False:
		return QuestSkipped
	default:
		return QuestFailed
	}
}

type ClaimResponse struct {
	Raw []byte
}

// Truthy accepts any non-empty body that is not a falsy JSON scalar. The
// claim endpoint's success flag is not inspected.
func (r ClaimResponse) Truthy() bool {
	body := strings.TrimSpace(string(r.Raw))
	if body == "" {
		return false
	}
	if !gjson.Valid(body) {
		return true
	}

	parsed := gjson.Parse(body)
	switch parsed.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return parsed.Num != 0
	case gjson.String:
		return parsed.Str != ""
	default:
		return true
	}
}
