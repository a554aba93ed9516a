package concierge

import (
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skeleton(text string) *models.ChatResponse {
	return &models.ChatResponse{Role: "model", Text: text, Actions: []models.Action{}}
}

func TestResolverIsTotalOverToolEnumeration(t *testing.T) {
	for _, name := range ToolNames {
		_, ok := toolHandlers[name]
		assert.True(t, ok, "tool %s must have a handler", name)
	}
	assert.Len(t, toolHandlers, len(ToolNames))
}

func TestResolverIgnoresUnknownToolNames(t *testing.T) {
	resp := skeleton("texto original")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: "someFutureTool", Args: map[string]any{"x": 1}},
		{Name: "", Args: nil},
	})

	assert.Equal(t, "texto original", resp.Text)
	assert.Nil(t, resp.UIComponent)
	assert.Empty(t, resp.Actions)
}

func TestScheduleMeetingVisitWithoutAddressAsksForIt(t *testing.T) {
	for _, args := range []map[string]any{
		{"type": "visit"},
		{"type": "visit", "address": ""},
		{"type": "visit", "address": "Rua X"},
		{"type": "visit", "address": 42},
	} {
		resp := skeleton("")
		ResolveToolCalls(resp, []models.ToolCall{{Name: ToolScheduleMeeting, Args: args}})

		assert.Nil(t, resp.UIComponent, "no widget on incomplete visit args: %v", args)
		assert.Contains(t, resp.Text, "endereço")
	}
}

func TestScheduleMeetingWithoutModalityAsksForIt(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolScheduleMeeting, Args: map[string]any{"type": "meeting"}},
	})

	assert.Nil(t, resp.UIComponent)
	assert.Contains(t, resp.Text, "online ou presencial")
}

func TestScheduleMeetingMissingTypeAsksWhichOne(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolScheduleMeeting, Args: nil},
	})

	assert.Nil(t, resp.UIComponent)
	assert.NotEmpty(t, resp.Text)
}

func TestScheduleMeetingValidVisitProducesCalendarWidget(t *testing.T) {
	resp := skeleton("ignorado: texto do modelo")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolScheduleMeeting, Args: map[string]any{"type": "visit", "address": "Rua X, 10"}},
	})

	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetCalendar, resp.UIComponent.Type)
	// Canonical copy always wins over whatever the model produced.
	assert.Equal(t, displayOverrides[WidgetCalendar], resp.Text)

	args, ok := resp.UIComponent.Data.(scheduleArgs)
	require.True(t, ok)
	assert.Equal(t, "visit", args.Type)
	assert.Equal(t, "Rua X, 10", args.Address)
}

func TestScheduleMeetingValidMeetingProducesCalendarWidget(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolScheduleMeeting, Args: map[string]any{"type": "meeting", "modality": "online"}},
	})

	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetCalendar, resp.UIComponent.Type)
}

func TestSocialLinksGetCanonicalCopy(t *testing.T) {
	resp := skeleton("texto do modelo sobre redes sociais")
	ResolveToolCalls(resp, []models.ToolCall{{Name: ToolGetSocialLinks}})

	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetSocialLinks, resp.UIComponent.Type)
	assert.Equal(t, displayOverrides[WidgetSocialLinks], resp.Text)
}

func TestLastWidgetProducingCallWins(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolShowProjects},
		{Name: ToolShowOfficeMap},
	})

	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetOfficeMap, resp.UIComponent.Type)
}

func TestDefaultTextFillsOnlyEmptyText(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{{Name: ToolShowProjects}})
	assert.Equal(t, "Aqui estão alguns dos nossos projetos.", resp.Text)

	resp = skeleton("texto do modelo")
	ResolveToolCalls(resp, []models.ToolCall{{Name: ToolShowProjects}})
	assert.Equal(t, "texto do modelo", resp.Text)
}

func TestSaveClientNoteAppendsAction(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolSaveClientNote, Args: map[string]any{"note": "Quero mais informações"}},
	})

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, models.ActionSaveNote, action.Type)
	require.NotNil(t, action.SaveNote)
	assert.Equal(t, "Quero mais informações", action.SaveNote.Message)
	assert.Equal(t, noteSourceChatbot, action.SaveNote.Source)
}

func TestNavigateSiteNormalizesPath(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolNavigateSite, Args: map[string]any{"path": "projetos"}},
	})

	require.Len(t, resp.Actions, 1)
	require.NotNil(t, resp.Actions[0].Navigate)
	assert.Equal(t, "/projetos", resp.Actions[0].Navigate.Path)
}

func TestRequestHumanAgentAppendsActionAndText(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{{Name: ToolRequestHumanAgent}})

	require.Len(t, resp.Actions, 1)
	assert.Equal(t, models.ActionRequestHuman, resp.Actions[0].Type)
	assert.NotEmpty(t, resp.Text)
}

func TestLearnClientPreferenceAppendsMemoryAction(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolLearnClientPreference, Args: map[string]any{
			"topic":   "estilo",
			"content": "prefere projetos minimalistas",
		}},
	})

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, models.ActionLearnMemory, action.Type)
	require.NotNil(t, action.LearnMemory)
	assert.Equal(t, "estilo", action.LearnMemory.Topic)
	assert.Equal(t, "preference", action.LearnMemory.Type)
}

func TestAutoNoteInterestAppendsNoteAction(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolAutoNoteInterest, Args: map[string]any{"interest": "reforma de apartamento"}},
	})

	require.Len(t, resp.Actions, 1)
	require.NotNil(t, resp.Actions[0].SaveNote)
	assert.Equal(t, noteSourceAutoInterest, resp.Actions[0].SaveNote.Source)
	assert.Contains(t, resp.Actions[0].SaveNote.Message, "reforma de apartamento")
}

func TestMultipleCallsPreserveActionOrder(t *testing.T) {
	resp := skeleton("")
	ResolveToolCalls(resp, []models.ToolCall{
		{Name: ToolSaveClientNote, Args: map[string]any{"note": "primeiro"}},
		{Name: ToolNavigateSite, Args: map[string]any{"path": "/contato"}},
		{Name: ToolRequestHumanAgent},
	})

	require.Len(t, resp.Actions, 3)
	assert.Equal(t, models.ActionSaveNote, resp.Actions[0].Type)
	assert.Equal(t, models.ActionNavigate, resp.Actions[1].Type)
	assert.Equal(t, models.ActionRequestHuman, resp.Actions[2].Type)
}
