package classify

import "context"

// Category identifica el tipo de señal cruda que se analiza.
// Espeja las categorías del dominio de observaciones; el puerto se mantiene
// autocontenido (mismo criterio que ports/auth).
type Category string

const (
	CategorySound            Category = "sound"
	CategoryFacialExpression Category = "facial_expression"
	CategoryBodyLanguage     Category = "body_language"
	CategoryEEG              Category = "eeg"
)

// Scores es el par de puntajes acotados [0,1] que produce un clasificador.
type Scores struct {
	Positive float64
	Active   float64
}

// Analyzer mapea un blob opaco de señal (audio/imagen/EEG) a un par de
// scores. Los modelos reales son colaboradores externos; aquí solo se fija
// la firma.
type Analyzer interface {
	Analyze(ctx context.Context, category Category, blob []byte) (Scores, error)
}
