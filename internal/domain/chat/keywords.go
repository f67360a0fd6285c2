package chat

import "strings"

// WindowKind selecciona la ventana de recuperación para una consulta.
type WindowKind string

const (
	WindowDaily  WindowKind = "daily"
	WindowWeekly WindowKind = "weekly"
)

// weeklyKeywords es la lista fija de indicadores de "esta semana".
// Clasificador por keywords, no un modelo: acá importan el determinismo y
// la testeabilidad (lista exacta), no el recall.
var weeklyKeywords = []string{
	"이번주",
	"이번 주",
	"일주일",
	"주간",
	"week",
	"weekly",
}

// SelectWindow clasifica la consulta por substring case-insensitive.
// Sin match => daily.
func SelectWindow(queryText string) WindowKind {
	q := strings.ToLower(queryText)
	for _, kw := range weeklyKeywords {
		if strings.Contains(q, strings.ToLower(kw)) {
			return WindowWeekly
		}
	}
	return WindowDaily
}
