package generation

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable indica que el modelo generativo no fue inicializado
	// (API key ausente, init fallido). La feature degrada a "unavailable",
	// nunca tumba el proceso.
	ErrUnavailable = errors.New("generation model unavailable")
)

// Gateway es el puerto hacia el modelo generativo de texto.
// Recibe un prompt ya armado y devuelve la respuesta, o error terminal.
// No hay retry a este nivel: la política de reintentos vive en el adapter.
type Gateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
