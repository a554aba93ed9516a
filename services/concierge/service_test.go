package concierge

import (
	"context"
	"errors"
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	out *models.ModelOutput
	err error
}

func (f *fakeModel) Invoke(_ context.Context, _ ModelRequest) (*models.ModelOutput, error) {
	return f.out, f.err
}

func newTestService(model ModelInvoker) *DefaultConciergeService {
	return &DefaultConciergeService{
		Model: model,
		Intn:  func(int) int { return 0 },
	}
}

func TestSynthesizeNoteOnlyTurn(t *testing.T) {
	// Model leaked the call into the text channel and produced nothing else.
	svc := newTestService(nil)
	resp := svc.Synthesize(models.ModelOutput{
		Text: `saveClientNote("Quero mais informações")`,
		ToolCalls: []models.ToolCall{
			{Name: ToolSaveClientNote, Args: map[string]any{"note": "Quero mais informações"}},
		},
	})

	require.Len(t, resp.Actions, 1)
	assert.Equal(t, models.ActionSaveNote, resp.Actions[0].Type)
	assert.Nil(t, resp.UIComponent)
	// The leaked call is gone and the note-saved pool filled the text.
	assert.Contains(t, noteSavedMessages, resp.Text)
}

func TestSynthesizeScheduleVisitTurn(t *testing.T) {
	svc := newTestService(nil)
	resp := svc.Synthesize(models.ModelOutput{
		Text: "Posso agendar isso para você!",
		ToolCalls: []models.ToolCall{
			{Name: ToolScheduleMeeting, Args: map[string]any{"type": "visit", "address": "Rua X, 10"}},
		},
	})

	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetCalendar, resp.UIComponent.Type)
	assert.Equal(t, displayOverrides[WidgetCalendar], resp.Text)
	assert.Equal(t, "model", resp.Role)
}

func TestSynthesizePlainText(t *testing.T) {
	svc := newTestService(nil)
	resp := svc.Synthesize(models.ModelOutput{Text: "Olá! Como posso ajudar?"})

	assert.Equal(t, "Olá! Como posso ajudar?", resp.Text)
	assert.Nil(t, resp.UIComponent)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessageModelFailureYieldsApology(t *testing.T) {
	svc := newTestService(&fakeModel{err: errors.New("transport down")})

	resp := svc.ProcessMessage(context.Background(), models.ChatRequest{
		ClientID: "client-1",
		Text:     "olá",
	})

	require.NotNil(t, resp)
	assert.Equal(t, apologyText, resp.Text)
	assert.Empty(t, resp.Actions)
	assert.Nil(t, resp.UIComponent)
}

func TestProcessMessageHappyPath(t *testing.T) {
	svc := newTestService(&fakeModel{out: &models.ModelOutput{
		Text: "Aqui estão nossos projetos!",
		ToolCalls: []models.ToolCall{
			{Name: ToolShowProjects},
		},
	}})

	resp := svc.ProcessMessage(context.Background(), models.ChatRequest{
		ClientID: "client-1",
		Text:     "quero ver projetos",
	})

	require.NotNil(t, resp)
	require.NotNil(t, resp.UIComponent)
	assert.Equal(t, WidgetProjectGallery, resp.UIComponent.Type)
	assert.Equal(t, "Aqui estão nossos projetos!", resp.Text)
}
