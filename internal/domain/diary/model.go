package diary

import (
	"time"

	"pet-behavior-diary/internal/domain/timewindow"
)

// Status es el resultado del ciclo de vida del diario para un request.
// Es un enum cerrado: todo switch sobre Status debe cubrir los seis casos.
type Status string

const (
	// StatusExists: había entrada persistida, se sirve tal cual.
	StatusExists Status = "exists"
	// StatusCreated: se generó y persistió por primera vez (solo "hoy").
	StatusCreated Status = "created"
	// StatusRegenerated: regeneración explícita de la entrada de hoy.
	StatusRegenerated Status = "regenerated"
	// StatusPastEmpty: día pasado sin entrada; no se fabrica retroactivamente.
	StatusPastEmpty Status = "past_empty"
	// StatusFutureEmpty: día futuro; nunca se toca el store ni el modelo.
	StatusFutureEmpty Status = "future_empty"
	// StatusTodayEmpty: hoy sin observaciones; no se genera ni persiste nada.
	StatusTodayEmpty Status = "today_empty"
)

// Entry es la narrativa generada para un día calendario.
// A lo sumo una fila persistida por (owner, pet, fecha): las escrituras
// son upserts idempotentes, no append.
type Entry struct {
	ID          string
	OwnerUserID string
	PetID       string

	DiaryDate timewindow.Date
	Content   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Result es lo que se devuelve al caller: contenido + estado calculado.
// El estado nunca se persiste, se deriva en cada lectura.
type Result struct {
	Content string
	Status  Status
}

// Messages son los textos de placeholder que se devuelven cuando no
// corresponde generar. Son copy de producto, no lógica: se dejan
// configurables en vez de quemados en el service.
type Messages struct {
	PastEmpty   string
	FutureEmpty string
	TodayEmpty  string
}

// DefaultMessages es el copy por defecto.
func DefaultMessages() Messages {
	return Messages{
		PastEmpty:   "No diary was written for this day.",
		FutureEmpty: "This day hasn't happened yet! Come back after spending it together.",
		TodayEmpty:  "Nothing recorded yet today. Capture a few moments and try again!",
	}
}
