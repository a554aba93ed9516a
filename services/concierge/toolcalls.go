package concierge

import (
	"strings"

	"concierge/models"
)

// The fixed tool enumeration shared with the model. Adding a tool requires
// both a declaration in the Gemini client and a handler in the resolver;
// removing one leaves it behind as a silently-ignored unknown name.
const (
	ToolShowProjects          = "showProjects"
	ToolShowCulturalProjects  = "showCulturalProjects"
	ToolShowProducts          = "showProducts"
	ToolScheduleMeeting       = "scheduleMeeting"
	ToolSaveClientNote        = "saveClientNote"
	ToolGetSocialLinks        = "getSocialLinks"
	ToolShowOfficeMap         = "showOfficeMap"
	ToolNavigateSite          = "navigateSite"
	ToolRequestHumanAgent     = "requestHumanAgent"
	ToolShowBudgetOptions     = "showBudgetOptions"
	ToolLearnClientPreference = "learnClientPreference"
	ToolAutoNoteInterest      = "autoNoteInterest"
)

// ToolNames lists the full enumeration, in declaration order.
var ToolNames = []string{
	ToolShowProjects,
	ToolShowCulturalProjects,
	ToolShowProducts,
	ToolScheduleMeeting,
	ToolSaveClientNote,
	ToolGetSocialLinks,
	ToolShowOfficeMap,
	ToolNavigateSite,
	ToolRequestHumanAgent,
	ToolShowBudgetOptions,
	ToolLearnClientPreference,
	ToolAutoNoteInterest,
}

// A visit without a usable street address gets a clarifying question instead
// of a widget. Eight runes is short enough to reject "Rua X" style stubs
// while accepting "Rua X, 10".
const minAddressLen = 8

// scheduleArgs is the validated form of a scheduleMeeting call.
type scheduleArgs struct {
	Type     string `json:"type"`     // "meeting" or "visit"
	Modality string `json:"modality"` // meetings: "online" or "presencial"
	Address  string `json:"address"`  // visits: where to meet
	Notes    string `json:"notes,omitempty"`
}

// parseScheduleArgs re-expresses the untyped payload as a closed variant.
// A non-empty clarify string means the args were missing or malformed and
// the model's decision cannot be honored yet.
func parseScheduleArgs(args map[string]any) (scheduleArgs, string) {
	parsed := scheduleArgs{
		Type:     strings.ToLower(strings.TrimSpace(argString(args, "type"))),
		Modality: strings.ToLower(strings.TrimSpace(argString(args, "modality"))),
		Address:  strings.TrimSpace(argString(args, "address")),
		Notes:    strings.TrimSpace(argString(args, "notes")),
	}

	switch parsed.Type {
	case models.AppointmentVisit:
		if len([]rune(parsed.Address)) < minAddressLen {
			return parsed, "Para agendar uma visita, preciso do endereço completo do local. Qual é o endereço?"
		}
	case models.AppointmentMeeting:
		if parsed.Modality != "online" && parsed.Modality != "presencial" {
			return parsed, "Você prefere uma reunião online ou presencial no nosso escritório?"
		}
	default:
		return parsed, "Você gostaria de agendar uma reunião ou uma visita ao local?"
	}
	return parsed, ""
}

// argString reads a string argument, tolerating absence and wrong types.
func argString(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
