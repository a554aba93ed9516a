// File: services/concierge/gemini.go
package concierge

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemInstruction = "Você é o assistente virtual de um escritório de arquitetura. " +
	"Responda em português, de forma simpática e objetiva. Use as ferramentas disponíveis " +
	"para mostrar projetos, agendar reuniões e visitas, anotar recados e guardar preferências " +
	"do cliente. Nunca invente informações sobre datas ou horários disponíveis."

// GeminiClient is the production ModelInvoker. It declares the fixed tool
// enumeration to the model and reduces the response to the ModelOutput
// contract: free text plus raw tool calls.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey, modelName string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	model.Tools = []*genai.Tool{{FunctionDeclarations: toolDeclarations()}}
	return &GeminiClient{model: model}, nil
}

// Invoke sends one prompt and maps the reply onto ModelOutput. Transport
// errors propagate; the synthesizer owns the apology fallback.
func (g *GeminiClient) Invoke(ctx context.Context, req ModelRequest) (*models.ModelOutput, error) {
	prompt := buildPrompt(req)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &models.ModelOutput{}, nil
	}

	var out models.ModelOutput
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			out.ToolCalls = append(out.ToolCalls, models.ToolCall{
				Name: p.Name,
				Args: p.Args,
			})
		}
	}
	out.Text = sb.String()
	return &out, nil
}

// buildPrompt renders the context block plus conversation history the way the
// widget expects the model to see them.
func buildPrompt(req ModelRequest) string {
	var sb strings.Builder

	if req.Context.Office != "" {
		sb.WriteString("Sobre o escritório: " + req.Context.Office + "\n")
	}
	if len(req.Context.Projects) > 0 {
		sb.WriteString("Projetos: " + strings.Join(req.Context.Projects, "; ") + "\n")
	}
	if len(req.Context.CulturalProjects) > 0 {
		sb.WriteString("Projetos culturais: " + strings.Join(req.Context.CulturalProjects, "; ") + "\n")
	}
	for _, m := range req.Context.Memories {
		sb.WriteString(fmt.Sprintf("Sobre o cliente (%s): %s\n", m.Topic, m.Content))
	}
	for _, msg := range req.Context.History {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", msg.Role, msg.Text))
	}
	sb.WriteString("[user] " + req.Message)
	return sb.String()
}

func toolDeclarations() []*genai.FunctionDeclaration {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	obj := func(required []string, props map[string]*genai.Schema) *genai.Schema {
		return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        ToolShowProjects,
			Description: "Mostra a galeria de projetos do escritório.",
		},
		{
			Name:        ToolShowCulturalProjects,
			Description: "Mostra a galeria de projetos culturais.",
		},
		{
			Name:        ToolShowProducts,
			Description: "Mostra os produtos disponíveis.",
		},
		{
			Name:        ToolScheduleMeeting,
			Description: "Abre o agendamento de uma reunião ou visita ao local.",
			Parameters: obj([]string{"type"}, map[string]*genai.Schema{
				"type":     str("\"meeting\" para reunião ou \"visit\" para visita ao local"),
				"modality": str("para reuniões: \"online\" ou \"presencial\""),
				"address":  str("para visitas: endereço completo do local"),
				"notes":    str("observações adicionais"),
			}),
		},
		{
			Name:        ToolSaveClientNote,
			Description: "Anota um recado ou pedido do cliente para a equipe.",
			Parameters: obj([]string{"note"}, map[string]*genai.Schema{
				"note":        str("conteúdo do recado"),
				"userName":    str("nome do cliente, se informado"),
				"userContact": str("contato do cliente, se informado"),
			}),
		},
		{
			Name:        ToolGetSocialLinks,
			Description: "Mostra os links das redes sociais do escritório.",
		},
		{
			Name:        ToolShowOfficeMap,
			Description: "Mostra o mapa com a localização do escritório.",
		},
		{
			Name:        ToolNavigateSite,
			Description: "Leva o cliente para uma página do site.",
			Parameters: obj([]string{"path"}, map[string]*genai.Schema{
				"path": str("caminho da página, por exemplo /projetos"),
			}),
		},
		{
			Name:        ToolRequestHumanAgent,
			Description: "Chama um atendente humano para a conversa.",
		},
		{
			Name:        ToolShowBudgetOptions,
			Description: "Mostra as opções de orçamento oferecidas.",
		},
		{
			Name:        ToolLearnClientPreference,
			Description: "Guarda uma preferência do cliente para conversas futuras.",
			Parameters: obj([]string{"topic", "content"}, map[string]*genai.Schema{
				"topic":   str("assunto da preferência"),
				"content": str("conteúdo da preferência"),
				"type":    str("tipo da memória, por exemplo \"preference\""),
			}),
		},
		{
			Name:        ToolAutoNoteInterest,
			Description: "Registra automaticamente um interesse demonstrado pelo cliente.",
			Parameters: obj([]string{"interest"}, map[string]*genai.Schema{
				"interest":    str("interesse demonstrado"),
				"userName":    str("nome do cliente, se informado"),
				"userContact": str("contato do cliente, se informado"),
			}),
		},
	}
}
