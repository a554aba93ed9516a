package concierge

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// The chat surface must never show a raw error or stay silently broken, so
// any transport failure collapses into this fixed reply.
const apologyText = "Desculpe, estou com dificuldades técnicas no momento. " +
	"Pode tentar novamente em instantes? Se preferir, deixe seu contato que retornaremos."

// DefaultConciergeService is the production synthesizer: it invokes the
// model, turns its raw output into a finished chat turn, dispatches the
// turn's side effects and maintains the conversation context.
type DefaultConciergeService struct {
	Model      ModelInvoker
	CtxStore   *RedisContextStore
	Memories   MemoryStore
	Content    SiteContent
	Dispatcher *Dispatcher

	// ModelTimeout bounds the model invocation; expiry falls back to the
	// apology response. Zero means no bound.
	ModelTimeout time.Duration

	// Intn is the random source for fallback pools; nil means rand.Intn.
	Intn func(int) int
}

// NewDefaultConciergeService wires the production service.
func NewDefaultConciergeService(
	model ModelInvoker,
	ctxStore *RedisContextStore,
	memories MemoryStore,
	content SiteContent,
	dispatcher *Dispatcher,
	modelTimeout time.Duration,
) *DefaultConciergeService {
	return &DefaultConciergeService{
		Model:        model,
		CtxStore:     ctxStore,
		Memories:     memories,
		Content:      content,
		Dispatcher:   dispatcher,
		ModelTimeout: modelTimeout,
		Intn:         rand.Intn,
	}
}

// ProcessMessage runs one chat turn end to end. It never returns an error:
// every failure path yields a well-formed response.
func (s *DefaultConciergeService) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	logger := utils.GetLogger()

	chatCtx := s.loadContext(ctx, req.ClientID)

	out, err := s.invokeModel(ctx, req, chatCtx)
	if err != nil {
		logger.Error("model invocation failed, returning apology",
			zap.String("clientID", req.ClientID), zap.Error(err))
		resp := apologyResponse()
		s.saveContext(ctx, req.ClientID, chatCtx, req.Text, resp.Text)
		return resp
	}

	resp := s.Synthesize(*out)

	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(ctx, req.ClientID, resp)
	}

	s.saveContext(ctx, req.ClientID, chatCtx, req.Text, resp.Text)
	return resp
}

// Synthesize turns raw model output into the finished immutable response:
// sanitize the text, resolve the tool calls, then fall back to a category
// message if no text survived.
func (s *DefaultConciergeService) Synthesize(out models.ModelOutput) *models.ChatResponse {
	resp := &models.ChatResponse{
		Role:    "model",
		Text:    Sanitize(out.Text),
		Actions: []models.Action{},
	}

	ResolveToolCalls(resp, out.ToolCalls)

	if strings.TrimSpace(resp.Text) == "" {
		resp.Text = FallbackText(resp, s.intn)
	}
	return resp
}

func (s *DefaultConciergeService) invokeModel(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ModelOutput, error) {
	if s.ModelTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.ModelTimeout)
		defer cancel()
	}

	promptCtx := PromptContext{
		User:    req.ClientID,
		History: chatCtx.History,
	}
	if s.Memories != nil {
		memories, err := s.Memories.List(ctx, req.ClientID)
		if err != nil {
			utils.GetLogger().Warn("failed to load client memories",
				zap.String("clientID", req.ClientID), zap.Error(err))
		} else {
			promptCtx.Memories = memories
		}
	}
	if s.Content != nil {
		promptCtx.Office = s.Content.Office(ctx)
		promptCtx.Projects = s.Content.Projects(ctx)
		promptCtx.CulturalProjects = s.Content.CulturalProjects(ctx)
	}

	return s.Model.Invoke(ctx, ModelRequest{
		ClientID: req.ClientID,
		Message:  req.Text,
		Context:  promptCtx,
	})
}

func (s *DefaultConciergeService) loadContext(ctx context.Context, clientID string) *models.ChatContext {
	if s.CtxStore == nil {
		return &models.ChatContext{}
	}
	chatCtx, err := s.CtxStore.Get(ctx, clientID)
	if err != nil {
		utils.GetLogger().Warn("failed to load chat context",
			zap.String("clientID", clientID), zap.Error(err))
		return &models.ChatContext{}
	}
	return chatCtx
}

func (s *DefaultConciergeService) saveContext(ctx context.Context, clientID string, chatCtx *models.ChatContext, userText, modelText string) {
	if s.CtxStore == nil {
		return
	}
	chatCtx.History = append(chatCtx.History,
		models.ChatMessage{Role: "user", Text: userText},
		models.ChatMessage{Role: "model", Text: modelText},
	)
	if err := s.CtxStore.Set(ctx, clientID, chatCtx); err != nil {
		utils.GetLogger().Warn("failed to save chat context",
			zap.String("clientID", clientID), zap.Error(err))
	}
}

func (s *DefaultConciergeService) intn(n int) int {
	if s.Intn != nil {
		return s.Intn(n)
	}
	return rand.Intn(n)
}

func apologyResponse() *models.ChatResponse {
	return &models.ChatResponse{
		Role:    "model",
		Text:    apologyText,
		Actions: []models.Action{},
	}
}
