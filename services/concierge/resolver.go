package concierge

import (
	"strings"

	"concierge/models"
)

// UI component types emitted by the resolver.
const (
	WidgetCalendar        = "CalendarWidget"
	WidgetSocialLinks     = "SocialLinks"
	WidgetProjectGallery  = "ProjectGallery"
	WidgetCulturalGallery = "CulturalProjectGallery"
	WidgetProductShowcase = "ProductShowcase"
	WidgetOfficeMap       = "OfficeMap"
	WidgetBudgetOptions   = "BudgetOptions"
)

// Note sources recorded with saveNote actions.
const (
	noteSourceChatbot      = "chatbot"
	noteSourceAutoInterest = "auto-interest"
)

// toolHandler inspects one recognized call and mutates the response skeleton.
type toolHandler func(resp *models.ChatResponse, call models.ToolCall)

// The fixed handler table. Every name in the tool enumeration has exactly
// one handler; any other name leaves the response unchanged.
var toolHandlers = map[string]toolHandler{
	ToolShowProjects:          widgetHandler(WidgetProjectGallery, "Aqui estão alguns dos nossos projetos."),
	ToolShowCulturalProjects:  widgetHandler(WidgetCulturalGallery, "Conheça nossos projetos culturais."),
	ToolShowProducts:          widgetHandler(WidgetProductShowcase, "Estes são os produtos disponíveis."),
	ToolShowOfficeMap:         widgetHandler(WidgetOfficeMap, "Aqui está a localização do nosso escritório."),
	ToolShowBudgetOptions:     widgetHandler(WidgetBudgetOptions, "Veja as opções de orçamento que oferecemos."),
	ToolGetSocialLinks:        widgetHandler(WidgetSocialLinks, ""),
	ToolScheduleMeeting:       handleScheduleMeeting,
	ToolSaveClientNote:        handleSaveClientNote,
	ToolNavigateSite:          handleNavigateSite,
	ToolRequestHumanAgent:     handleRequestHuman,
	ToolLearnClientPreference: handleLearnPreference,
	ToolAutoNoteInterest:      handleAutoNoteInterest,
}

// The display copy for these widgets is authoritative: the model has produced
// confusing captions for structured widgets before, so whatever it (or a
// handler) wrote is replaced wholesale.
var displayOverrides = map[string]string{
	WidgetCalendar:    "Claro! Escolha abaixo a data e o horário que ficam melhores para você.",
	WidgetSocialLinks: "Você pode nos acompanhar nas redes sociais pelos links abaixo.",
}

// ResolveToolCalls processes the calls in list order against the fixed table
// and then applies the display-authority overrides. Stage one computes
// intent (last widget-producing call wins, default text fills only empty
// text); stage two forces canonical copy per widget type. Never fails:
// unknown names are skipped, malformed args degrade to clarifying questions.
func ResolveToolCalls(resp *models.ChatResponse, calls []models.ToolCall) {
	for _, call := range calls {
		handler, ok := toolHandlers[call.Name]
		if !ok {
			continue
		}
		handler(resp, call)
	}

	if resp.UIComponent != nil {
		if canonical, ok := displayOverrides[resp.UIComponent.Type]; ok {
			resp.Text = canonical
		}
	}
}

// widgetHandler builds a handler that sets a data-less widget and fills in
// default text when the model produced none.
func widgetHandler(widgetType, defaultText string) toolHandler {
	return func(resp *models.ChatResponse, _ models.ToolCall) {
		resp.UIComponent = &models.UIComponent{Type: widgetType}
		setDefaultText(resp, defaultText)
	}
}

func handleScheduleMeeting(resp *models.ChatResponse, call models.ToolCall) {
	args, clarify := parseScheduleArgs(call.Args)
	if clarify != "" {
		// No widget on incomplete args: ask instead of guessing.
		resp.Text = clarify
		return
	}
	resp.UIComponent = &models.UIComponent{Type: WidgetCalendar, Data: args}
}

func handleSaveClientNote(resp *models.ChatResponse, call models.ToolCall) {
	message := argString(call.Args, "note")
	if message == "" {
		message = argString(call.Args, "message")
	}
	if strings.TrimSpace(message) == "" {
		setDefaultText(resp, "O que você gostaria que eu anotasse para a nossa equipe?")
		return
	}
	resp.Actions = append(resp.Actions, models.Action{
		Type: models.ActionSaveNote,
		SaveNote: &models.SaveNotePayload{
			UserName:    argString(call.Args, "userName"),
			UserContact: argString(call.Args, "userContact"),
			Message:     message,
			Source:      noteSourceChatbot,
		},
	})
}

func handleNavigateSite(resp *models.ChatResponse, call models.ToolCall) {
	path := strings.TrimSpace(argString(call.Args, "path"))
	if path == "" {
		setDefaultText(resp, "Para qual página do site você gostaria de ir?")
		return
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	resp.Actions = append(resp.Actions, models.Action{
		Type:     models.ActionNavigate,
		Navigate: &models.NavigatePayload{Path: path},
	})
}

func handleRequestHuman(resp *models.ChatResponse, _ models.ToolCall) {
	resp.Actions = append(resp.Actions, models.Action{Type: models.ActionRequestHuman})
	setDefaultText(resp, "Claro! Vou chamar alguém da nossa equipe para falar com você. Só um momento.")
}

func handleLearnPreference(resp *models.ChatResponse, call models.ToolCall) {
	topic := strings.TrimSpace(argString(call.Args, "topic"))
	content := strings.TrimSpace(argString(call.Args, "content"))
	if topic == "" || content == "" {
		return
	}
	memType := argString(call.Args, "type")
	if memType == "" {
		memType = "preference"
	}
	resp.Actions = append(resp.Actions, models.Action{
		Type:        models.ActionLearnMemory,
		LearnMemory: &models.LearnMemoryPayload{Topic: topic, Content: content, Type: memType},
	})
}

func handleAutoNoteInterest(resp *models.ChatResponse, call models.ToolCall) {
	interest := strings.TrimSpace(argString(call.Args, "interest"))
	if interest == "" {
		return
	}
	resp.Actions = append(resp.Actions, models.Action{
		Type: models.ActionSaveNote,
		SaveNote: &models.SaveNotePayload{
			UserName:    argString(call.Args, "userName"),
			UserContact: argString(call.Args, "userContact"),
			Message:     "Interesse demonstrado: " + interest,
			Source:      noteSourceAutoInterest,
		},
	})
}

func setDefaultText(resp *models.ChatResponse, text string) {
	if strings.TrimSpace(resp.Text) == "" && text != "" {
		resp.Text = text
	}
}
