package concierge

import (
	"math/rand"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
)

func first(int) int { return 0 }

func respWith(actions ...models.Action) *models.ChatResponse {
	return &models.ChatResponse{Role: "model", Actions: actions}
}

func TestFallbackCategoryPrecedence(t *testing.T) {
	note := models.Action{Type: models.ActionSaveNote, SaveNote: &models.SaveNotePayload{Message: "x"}}
	memory := models.Action{Type: models.ActionLearnMemory, LearnMemory: &models.LearnMemoryPayload{Topic: "t", Content: "c"}}
	navigate := models.Action{Type: models.ActionNavigate, Navigate: &models.NavigatePayload{Path: "/projetos"}}

	testCases := []struct {
		name string
		resp *models.ChatResponse
		want string
	}{
		{"note beats everything", respWith(navigate, memory, note), noteSavedMessages[0]},
		{"memory beats navigation", respWith(navigate, memory), memoryLearnedMessages[0]},
		{"navigation gets path suffix", respWith(navigate), navigationMessages[0] + "/projetos"},
		{"widget redirect", &models.ChatResponse{UIComponent: &models.UIComponent{Type: WidgetBudgetOptions}}, widgetRedirectMessages[0]},
		{"generic when nothing happened", respWith(), notUnderstoodMessages[0]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FallbackText(tc.resp, first))
		})
	}
}

func TestFallbackPicksWithinPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[FallbackText(respWith(), rng.Intn)] = true
	}

	// Every pick is a pool member, and the pool is actually sampled.
	for msg := range seen {
		assert.Contains(t, notUnderstoodMessages, msg)
	}
	assert.Greater(t, len(seen), 1, "random source should reach more than one message")
}
