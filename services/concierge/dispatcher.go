package concierge

import (
	"context"
	"time"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// Dispatcher executes a response's action list against the external
// collaborators, sequentially in array order, each action at most once.
// Failures are logged and swallowed: a lost side effect must not break the
// chat turn that already rendered.
type Dispatcher struct {
	Notes    NoteSink
	Nav      Navigator
	Memories MemoryStore
	Handoff  HumanHandoff

	// NavigationDelay postpones navigation so the user can read the reply
	// before the page changes. Zero navigates inline (used by tests).
	NavigationDelay time.Duration
}

// Dispatch runs every action of the response exactly once.
func (d *Dispatcher) Dispatch(ctx context.Context, clientID string, resp *models.ChatResponse) {
	logger := utils.GetLogger()

	for _, action := range resp.Actions {
		switch action.Type {
		case models.ActionSaveNote:
			if d.Notes == nil || action.SaveNote == nil {
				continue
			}
			if err := d.Notes.Save(ctx, *action.SaveNote); err != nil {
				logger.Error("failed to save client note",
					zap.String("clientID", clientID), zap.Error(err))
			}

		case models.ActionNavigate:
			if d.Nav == nil || action.Navigate == nil {
				continue
			}
			d.navigate(clientID, action.Navigate.Path)

		case models.ActionLearnMemory:
			if d.Memories == nil || action.LearnMemory == nil {
				continue
			}
			if err := d.Memories.Learn(ctx, clientID, *action.LearnMemory); err != nil {
				logger.Error("failed to learn client memory",
					zap.String("clientID", clientID), zap.Error(err))
			}

		case models.ActionRequestHuman:
			if d.Handoff == nil {
				continue
			}
			if err := d.Handoff.Request(ctx, clientID); err != nil {
				logger.Error("failed to request human agent",
					zap.String("clientID", clientID), zap.Error(err))
			}

		default:
			logger.Warn("unknown action type skipped",
				zap.String("type", string(action.Type)))
		}
	}
}

// navigate fires after the delay and continues immediately; the dispatch loop
// does not wait for it.
func (d *Dispatcher) navigate(clientID, path string) {
	run := func() {
		// Detached from the request context on purpose: the delayed
		// navigation outlives the HTTP request that produced it.
		if err := d.Nav.Navigate(context.Background(), path); err != nil {
			utils.GetLogger().Error("failed to navigate",
				zap.String("clientID", clientID), zap.String("path", path), zap.Error(err))
		}
	}
	if d.NavigationDelay > 0 {
		time.AfterFunc(d.NavigationDelay, run)
		return
	}
	run()
}
