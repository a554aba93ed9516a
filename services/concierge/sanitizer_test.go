package concierge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRemovesLeakageShapes(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean text untouched",
			input: "Olá! Como posso ajudar?",
			want:  "Olá! Como posso ajudar?",
		},
		{
			name:  "fenced tool_call block",
			input: "Claro!\n```tool_call\n{\"name\": \"showProjects\"}\n```",
			want:  "Claro!",
		},
		{
			name:  "xml tool tag block",
			input: "Um momento <tool_call>{\"name\":\"showOfficeMap\"}</tool_call> por favor.",
			want:  "Um momento  por favor.",
		},
		{
			name:  "stray xml tag",
			input: "Aqui está. </tool_call>",
			want:  "Aqui está.",
		},
		{
			name:  "bracketed call marker",
			input: "Vou verificar [TOOL_CALL: scheduleMeeting] agora.",
			want:  "Vou verificar  agora.",
		},
		{
			name:  "call with parentheses",
			input: `saveClientNote("Quero mais informações")`,
			want:  "",
		},
		{
			name:  "bolded tool mention",
			input: "Usando **getSocialLinks** para você.",
			want:  "Usando  para você.",
		},
		{
			name:  "standalone tool-name line",
			input: "Aqui estão os projetos.\nshowProjects\nEspero que goste!",
			want:  "Aqui estão os projetos.\n\nEspero que goste!",
		},
		{
			name:  "trailing tool name",
			input: "Vou anotar isso. saveClientNote",
			want:  "Vou anotar isso.",
		},
		{
			name:  "multiple trailing tool names",
			input: "Feito. saveClientNote autoNoteInterest",
			want:  "Feito.",
		},
		{
			name:  "boilerplate sentence",
			input: "Vou usar a ferramenta scheduleMeeting. Escolha um horário.",
			want:  "Escolha um horário.",
		},
		{
			name:  "bare json arguments",
			input: `Anotado. {"name": "saveClientNote", "args": {"note": "ligar depois"}}`,
			want:  "Anotado.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "tool name inside a word survives",
			input: "O projeto showProjectsHouse é novo.",
			want:  "O projeto showProjectsHouse é novo.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.input))
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Olá! Como posso ajudar?",
		"Claro!\n```tool_call\n{\"name\": \"showProjects\"}\n```",
		`saveClientNote("Quero mais informações")`,
		"Feito. saveClientNote autoNoteInterest",
		`Anotado. saveClientNote {"args": {"note": "x"}}`,
		"Vou usar a ferramenta scheduleMeeting. Escolha um horário.",
		"Aqui estão os projetos.\nshowProjects\nEspero que goste!",
		"",
		"texto normal sem nenhuma ferramenta",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		assert.Equal(t, once, twice, "sanitize must be a no-op on its own output: %q", input)
	}
}
