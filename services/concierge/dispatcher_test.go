package concierge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSinks struct {
	mu    sync.Mutex
	calls []string

	noteErr error
}

func (r *recordingSinks) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingSinks) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recordingSinks) Save(_ context.Context, note models.SaveNotePayload) error {
	r.record("note:" + note.Message)
	return r.noteErr
}

func (r *recordingSinks) Navigate(_ context.Context, path string) error {
	r.record("nav:" + path)
	return nil
}

func (r *recordingSinks) Learn(_ context.Context, _ string, m models.LearnMemoryPayload) error {
	r.record("mem:" + m.Topic)
	return nil
}

func (r *recordingSinks) List(_ context.Context, _ string) ([]models.ClientMemory, error) {
	return nil, nil
}

func (r *recordingSinks) Request(_ context.Context, clientID string) error {
	r.record("human:" + clientID)
	return nil
}

func newRecordingDispatcher(sinks *recordingSinks) *Dispatcher {
	return &Dispatcher{
		Notes:    sinks,
		Nav:      sinks,
		Memories: sinks,
		Handoff:  sinks,
	}
}

func TestDispatchRunsActionsInOrderExactlyOnce(t *testing.T) {
	sinks := &recordingSinks{}
	d := newRecordingDispatcher(sinks)

	d.Dispatch(context.Background(), "client-1", &models.ChatResponse{
		Actions: []models.Action{
			{Type: models.ActionSaveNote, SaveNote: &models.SaveNotePayload{Message: "a"}},
			{Type: models.ActionLearnMemory, LearnMemory: &models.LearnMemoryPayload{Topic: "b", Content: "c"}},
			{Type: models.ActionNavigate, Navigate: &models.NavigatePayload{Path: "/p"}},
			{Type: models.ActionRequestHuman},
		},
	})

	assert.Equal(t, []string{"note:a", "mem:b", "nav:/p", "human:client-1"}, sinks.recorded())
}

func TestDispatchSwallowsSinkErrors(t *testing.T) {
	sinks := &recordingSinks{noteErr: errors.New("mongo down")}
	d := newRecordingDispatcher(sinks)

	d.Dispatch(context.Background(), "client-1", &models.ChatResponse{
		Actions: []models.Action{
			{Type: models.ActionSaveNote, SaveNote: &models.SaveNotePayload{Message: "a"}},
			{Type: models.ActionRequestHuman},
		},
	})

	// The failed note does not stop the handoff that follows it.
	assert.Equal(t, []string{"note:a", "human:client-1"}, sinks.recorded())
}

func TestDispatchSkipsMalformedActions(t *testing.T) {
	sinks := &recordingSinks{}
	d := newRecordingDispatcher(sinks)

	d.Dispatch(context.Background(), "client-1", &models.ChatResponse{
		Actions: []models.Action{
			{Type: models.ActionSaveNote},          // payload missing
			{Type: models.ActionType("somethingElse")}, // unknown tag
		},
	})

	assert.Empty(t, sinks.recorded())
}

func TestDispatchDelaysNavigation(t *testing.T) {
	sinks := &recordingSinks{}
	d := newRecordingDispatcher(sinks)
	d.NavigationDelay = 30 * time.Millisecond

	d.Dispatch(context.Background(), "client-1", &models.ChatResponse{
		Actions: []models.Action{
			{Type: models.ActionNavigate, Navigate: &models.NavigatePayload{Path: "/p"}},
			{Type: models.ActionRequestHuman},
		},
	})

	// The dispatch loop did not wait for the navigation timer: the handoff
	// already ran, the navigation has not.
	assert.Equal(t, []string{"human:client-1"}, sinks.recorded())

	require.Eventually(t, func() bool {
		calls := sinks.recorded()
		return len(calls) == 2 && calls[1] == "nav:/p"
	}, time.Second, 5*time.Millisecond)
}
