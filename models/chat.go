package models

// ModelOutput is the raw, untrusted pair produced by the language model:
// free text plus whatever tool calls it decided to emit.
type ModelOutput struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"toolCalls"`
}

// ToolCall is a single structured call emitted by the model. Name is expected
// to belong to the fixed tool enumeration; unknown names are ignored.
type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// UIComponent describes the widget the frontend should render for a turn.
type UIComponent struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// ChatResponse is the finished chat turn consumed by the rest of the system.
// It is immutable once returned by the synthesizer.
type ChatResponse struct {
	Role        string       `json:"role"`
	Text        string       `json:"text"`
	UIComponent *UIComponent `json:"uiComponent,omitempty"`
	Actions     []Action     `json:"actions"`
}

// ActionType tags the variants of Action.
type ActionType string

const (
	ActionSaveNote     ActionType = "saveNote"
	ActionNavigate     ActionType = "navigate"
	ActionLearnMemory  ActionType = "learnMemory"
	ActionRequestHuman ActionType = "requestHuman"
)

// SaveNotePayload carries a client note for the note sink.
type SaveNotePayload struct {
	UserName    string `json:"userName"`
	UserContact string `json:"userContact"`
	Message     string `json:"message"`
	Source      string `json:"source"`
}

// NavigatePayload carries a site path for the navigator.
type NavigatePayload struct {
	Path string `json:"path"`
}

// LearnMemoryPayload carries a learned client preference for the memory store.
type LearnMemoryPayload struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Action is a tagged variant: exactly the payload matching Type is non-nil
// (requestHuman carries no payload). Dispatch order matters and each action
// runs at most once per response.
type Action struct {
	Type        ActionType          `json:"type"`
	SaveNote    *SaveNotePayload    `json:"saveNote,omitempty"`
	Navigate    *NavigatePayload    `json:"navigate,omitempty"`
	LearnMemory *LearnMemoryPayload `json:"learnMemory,omitempty"`
}

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	ClientID string `json:"clientId"`
	Text     string `json:"text"`
}

// ChatMessage is one retained turn of conversation history.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatContext is the per-client conversation state kept between turns.
type ChatContext struct {
	History []ChatMessage `json:"history"`
}
