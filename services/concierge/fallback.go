package concierge

import "concierge/models"

// Fallback message pools, one per outcome category. The category is
// deterministic, the message within it is picked at random so replies do not
// feel canned. Precedence when a turn produced several action types:
// note saved > memory learned > navigation > widget redirect > generic.

var noteSavedMessages = []string{
	"Anotei suas informações! Nossa equipe entrará em contato em breve.",
	"Pronto, registrei seu recado para a equipe. Retornaremos assim que possível.",
	"Sua mensagem foi anotada. Obrigado pelo interesse!",
	"Recado anotado! Alguém da equipe vai falar com você em breve.",
}

var memoryLearnedMessages = []string{
	"Entendi, vou me lembrar disso nas próximas conversas.",
	"Anotado! Vou levar essa preferência em conta.",
	"Perfeito, guardei essa informação para personalizar nosso atendimento.",
}

var navigationMessages = []string{
	"Claro, estou te levando para a página: ",
	"Sem problemas! Abrindo a página: ",
	"Vamos lá, redirecionando você para: ",
}

var widgetRedirectMessages = []string{
	"Dê uma olhada nas opções abaixo.",
	"Preparei isto aqui para você.",
	"Veja abaixo o que encontrei para você.",
}

var notUnderstoodMessages = []string{
	"Desculpe, não entendi muito bem. Pode reformular?",
	"Hmm, não tenho certeza se entendi. Pode me explicar de outro jeito?",
	"Não consegui entender sua mensagem. Pode tentar novamente?",
	"Perdão, essa eu não peguei. Pode dizer com outras palavras?",
}

// FallbackText picks a human-friendly message for a response whose text is
// still empty after sanitization and resolution. intn is the caller's random
// source (rand.Intn in production, deterministic in tests).
func FallbackText(resp *models.ChatResponse, intn func(int) int) string {
	var navigatePath string
	hasNote, hasMemory, hasNavigate := false, false, false
	for _, action := range resp.Actions {
		switch action.Type {
		case models.ActionSaveNote:
			hasNote = true
		case models.ActionLearnMemory:
			hasMemory = true
		case models.ActionNavigate:
			hasNavigate = true
			if action.Navigate != nil {
				navigatePath = action.Navigate.Path
			}
		}
	}

	switch {
	case hasNote:
		return pick(noteSavedMessages, intn)
	case hasMemory:
		return pick(memoryLearnedMessages, intn)
	case hasNavigate:
		return pick(navigationMessages, intn) + navigatePath
	case resp.UIComponent != nil:
		return pick(widgetRedirectMessages, intn)
	default:
		return pick(notUnderstoodMessages, intn)
	}
}

func pick(pool []string, intn func(int) int) string {
	if intn == nil {
		return pool[0]
	}
	return pool[intn(len(pool))]
}
