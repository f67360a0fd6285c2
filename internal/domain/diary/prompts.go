package diary

import (
	"fmt"
	"strings"

	"pet-behavior-diary/internal/domain/timewindow"
)

// Leyenda fija de interpretación de scores. Va en todos los prompts para
// que el lenguaje del modelo sea consistente entre llamadas.
const scoreLegend = `How to read the scores:
- positive_score above 0.70 means a clearly positive mood; below 0.40 means discomfort or a negative mood.
- active_score above 0.70 means high energy; below 0.30 means low energy or rest.
- Scores in between are neutral; do not over-interpret them.`

// ComposeDiaryPrompt arma el prompt del diario. Solo se invoca con contexto
// no vacío: los callers cortocircuitan antes (ver Service) cuando el día no
// tiene observaciones.
func ComposeDiaryPrompt(profileText string, rctx RenderedContext, date timewindow.Date) string {
	var b strings.Builder

	b.WriteString("You are writing a diary entry in the voice of a pet, in first person, about the day ")
	b.WriteString(date.String())
	b.WriteString(".\n\n")

	if strings.TrimSpace(profileText) != "" {
		b.WriteString("About this pet: ")
		b.WriteString(strings.TrimSpace(profileText))
		b.WriteString("\n\n")
	}

	b.WriteString("These are today's recorded moments (local times):\n")
	b.WriteString(rctx.String())
	b.WriteString("\n\n")
	b.WriteString(scoreLegend)
	b.WriteString("\n\n")
	b.WriteString("Write a warm, first-person narrative of the day. Weave the moments into a story; do not enumerate the data or mention scores. ")
	b.WriteString("No matter how difficult the day looks in the numbers, you must end the entry with an affectionate closing line addressed to your owner.")

	return b.String()
}

// ComposeQueryPrompt arma el prompt del chatbot. Elige la variante con o
// sin contexto según rctx: con datos, el modelo debe explicar causalmente
// los scores bajos y dar guía accionable; sin datos, tiene prohibido
// referenciar o pedir datos de análisis.
func ComposeQueryPrompt(profileText string, rctx RenderedContext, queryText, windowLabel string) string {
	var b strings.Builder

	b.WriteString("You are a friendly and helpful expert on pet behavior.\n\n")

	if strings.TrimSpace(profileText) != "" {
		b.WriteString("About this pet: ")
		b.WriteString(strings.TrimSpace(profileText))
		b.WriteString("\n\n")
	}

	if rctx.IsEmpty() {
		b.WriteString("There is no behavior analysis data available for this pet. ")
		b.WriteString("Answer from general knowledge only. Do not reference analysis data, do not mention that data is missing, and do not ask the owner to run an analysis.\n\n")
	} else {
		fmt.Fprintf(&b, "Recorded behavior observations for %s (local times):\n", windowLabel)
		b.WriteString(rctx.String())
		b.WriteString("\n\n")
		b.WriteString(scoreLegend)
		b.WriteString("\n\n")
		b.WriteString("Ground your answer in these observations. If you see low scores, explain what could be causing them and offer concrete, actionable guidance to the owner.\n\n")
	}

	b.WriteString("The owner's question: ")
	b.WriteString(strings.TrimSpace(queryText))
	b.WriteString("\nProvide a concise and helpful answer.")

	return b.String()
}
