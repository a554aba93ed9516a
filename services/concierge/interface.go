package concierge

import (
	"context"

	"concierge/models"
)

// PromptContext is the situational block handed to the model alongside the
// user message.
type PromptContext struct {
	User             string
	Memories         []models.ClientMemory
	Office           string
	Projects         []string
	CulturalProjects []string
	History          []models.ChatMessage
}

// ModelRequest is what the model-invocation boundary consumes.
type ModelRequest struct {
	ClientID string
	Message  string
	Context  PromptContext
}

// ModelInvoker is the model-invocation boundary. The inference call itself is
// external; this side only consumes its output contract.
type ModelInvoker interface {
	Invoke(ctx context.Context, req ModelRequest) (*models.ModelOutput, error)
}

// NoteSink receives saveNote actions.
type NoteSink interface {
	Save(ctx context.Context, note models.SaveNotePayload) error
}

// Navigator receives navigate actions. The actual page change happens on the
// frontend; server-side implementations record the intent.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// MemoryStore receives learnMemory actions and feeds memories back into the
// prompt context.
type MemoryStore interface {
	Learn(ctx context.Context, clientID string, memory models.LearnMemoryPayload) error
	List(ctx context.Context, clientID string) ([]models.ClientMemory, error)
}

// HumanHandoff receives requestHuman actions. Delivery (email, SMS, queue)
// is an external collaborator.
type HumanHandoff interface {
	Request(ctx context.Context, clientID string) error
}

// SiteContent provides the office/projects blocks for the prompt context.
// Content management is external; implementations may be static.
type SiteContent interface {
	Office(ctx context.Context) string
	Projects(ctx context.Context) []string
	CulturalProjects(ctx context.Context) []string
}

// ConciergeService turns one user message into one finished chat turn. It
// never returns an error: every failure collapses into a well-formed
// apology response.
type ConciergeService interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}
