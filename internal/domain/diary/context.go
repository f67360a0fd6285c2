package diary

import (
	"fmt"
	"strings"
	"time"

	"pet-behavior-diary/internal/domain/observations"
)

// RenderedContext es el digest textual de observaciones que se incrusta
// en los prompts. Derivado, nunca persistido.
type RenderedContext struct {
	Lines []string
}

func (c RenderedContext) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c RenderedContext) String() string {
	return strings.Join(c.Lines, "\n")
}

// AssembleContext renderiza una línea por observación: hora local en reloj
// de 12 horas, los dos scores a dos decimales y, si existe, la nota de
// actividad entre paréntesis.
//
// Los registros llegan ya filtrados a una ventana y ordenados por el store.
// Registros con timestamp imparseable se saltan en silencio. El formato es
// determinista: mismo input produce bytes idénticos, que es lo que hace
// reproducible el artefacto generado cuando el gateway está stubbeado.
func AssembleContext(records []observations.Record, loc *time.Location) RenderedContext {
	lines := make([]string, 0, len(records))

	for _, r := range records {
		t, ok := observations.ParseStoredTime(r.CreatedAt)
		if !ok {
			continue
		}

		line := fmt.Sprintf("- %s: positive %.2f, active %.2f",
			t.In(loc).Format("03:04 PM"), r.PositiveScore, r.ActiveScore)

		if note := strings.TrimSpace(r.ActivityNote); note != "" {
			line += fmt.Sprintf(" (%s)", note)
		}

		lines = append(lines, line)
	}

	return RenderedContext{Lines: lines}
}
