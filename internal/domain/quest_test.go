package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCompletion(t *testing.T) {
	tests := []struct {
		name string
		resp CompletionResponse
		want QuestState
	}{
		{name: "success flag with reward", resp: CompletionResponse{StatusCode: http.StatusCreated, Success: true, Data: []byte(`{"amount":1000}`)}, want: QuestCompleted},
		{name: "success flag wins over false data", resp: CompletionResponse{StatusCode: http.StatusOK, Success: true, Data: []byte(`false`)}, want: QuestCompleted},
		{name: "recognized but unclaimed", resp: CompletionResponse{StatusCode: http.StatusOK, Success: false, Data: []byte(`true`)}, want: QuestNeedsClaim},
		{name: "recognized on created", resp: CompletionResponse{StatusCode: http.StatusCreated, Data: []byte(`true`)}, want: QuestNeedsClaim},
		{name: "prerequisites unmet", resp: CompletionResponse{StatusCode: http.StatusOK, Data: []byte(`false`)}, want: QuestSkipped},
		{name: "false on other status", resp: CompletionResponse{StatusCode: http.StatusAccepted, Data: []byte(`false`)}, want: QuestSkipped},
		{name: "true on other status", resp: CompletionResponse{StatusCode: http.StatusAccepted, Data: []byte(`true`)}, want: QuestFailed},
		{name: "success on other status", resp: CompletionResponse{StatusCode: http.StatusAccepted, Success: true}, want: QuestFailed},
		{name: "object without success", resp: CompletionResponse{StatusCode: http.StatusOK, Data: []byte(`{"error":"x"}`)}, want: QuestFailed},
		{name: "missing data", resp: CompletionResponse{StatusCode: http.StatusOK}, want: QuestFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyCompletion(tc.resp))
		})
	}
}

func TestClaimResponseTruthy(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: `{"success":true,"data":true}`, want: true},
		{raw: `{"success":false}`, want: true},
		{raw: `true`, want: true},
		{raw: `1`, want: true},
		{raw: `"ok"`, want: true},
		{raw: `[]`, want: true},
		{raw: `plain text`, want: true},
		{raw: ``, want: false},
		{raw: `   `, want: false},
		{raw: `false`, want: false},
		{raw: `null`, want: false},
		{raw: `0`, want: false},
		{raw: `""`, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ClaimResponse{Raw: []byte(tc.raw)}.Truthy())
		})
	}
}

func TestOutstandingQuestsFiltersClaimed(t *testing.T) {
	quests := []Quest{
		{ID: "q1", Progress: QuestProgress{Claimed: false}},
		{ID: "q2", Progress: QuestProgress{Claimed: true}},
		{ID: "q3"},
	}

	got := OutstandingQuests(quests)

	ids := make([]string, 0, len(got))
	for _, quest := range got {
		ids = append(ids, quest.ID)
	}
	assert.Equal(t, []string{"q1", "q3"}, ids)
}

func TestQuestStateTerminal(t *testing.T) {
	assert.False(t, QuestListed.Terminal())
	assert.False(t, QuestNeedsClaim.Terminal())
	assert.True(t, QuestCompleted.Terminal())
	assert.True(t, QuestSkipped.Terminal())
	assert.True(t, QuestFailed.Terminal())
	assert.True(t, QuestDone.Terminal())
}
