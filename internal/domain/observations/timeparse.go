package observations

import (
	"strings"
	"time"
)

// Formas de created_at que devuelven los stores en la práctica:
// - RFC3339 con `Z` o offset completo: 2024-06-01T09:00:00Z
// - offset pelado de dos dígitos:      2024-06-01T09:00:00.123+00
// - espacio en vez de `T`:             2024-06-01 09:00:00+00
// - naive (sin zona), se asume UTC:    2024-06-01 09:00:00
var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
}

// ParseStoredTime normaliza las codificaciones textuales toleradas a un
// instante UTC. Devuelve ok=false ante input imparseable: el registro
// afectado se salta, nunca se aborta el procesamiento completo.
func ParseStoredTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range storedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
