package pets

import (
	"fmt"
	"strings"
)

// ProfileText arma la descripción corta de la mascota que se incrusta
// en los prompts de generación. Es texto plano, una sola línea.
// Campos vacíos simplemente se omiten.
func ProfileText(p Pet) string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ""
	}

	attrs := make([]string, 0, 3)
	if s := strings.TrimSpace(p.Species); s != "" {
		attrs = append(attrs, s)
	}
	if b := strings.TrimSpace(p.Breed); b != "" {
		attrs = append(attrs, b)
	}
	if sx := strings.TrimSpace(p.Sex); sx != "" && sx != string(SexUnknown) {
		attrs = append(attrs, sx)
	}

	out := name
	if len(attrs) > 0 {
		out = fmt.Sprintf("%s (%s)", name, strings.Join(attrs, ", "))
	}

	if p.BirthDate != nil {
		out += ", born " + p.BirthDate.Format("2006-01-02")
	}
	if n := strings.TrimSpace(p.Notes); n != "" {
		out += ". " + n
	}

	return out
}
