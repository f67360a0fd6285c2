package mock

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"pet-behavior-diary/internal/ports/classify"
)

// Analyzer es el clasificador de relleno hasta que se conecten los modelos
// reales de audio/imagen/EEG. Devuelve scores uniformes dentro del rango
// típico de cada categoría, así los consumidores (diario, chatbot) ven
// datos con forma realista.
type Analyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAnalyzer(seed int64) *Analyzer {
	return &Analyzer{
		rng: rand.New(rand.NewSource(seed)),
	}
}

type scoreRange struct {
	posMin, posMax float64
	actMin, actMax float64
}

var rangesByCategory = map[classify.Category]scoreRange{
	classify.CategorySound:            {posMin: 0.1, posMax: 0.9, actMin: 0.3, actMax: 0.9},
	classify.CategoryFacialExpression: {posMin: 0.2, posMax: 0.8, actMin: 0.1, actMax: 0.5},
	classify.CategoryBodyLanguage:     {posMin: 0.3, posMax: 0.9, actMin: 0.2, actMax: 0.8},
	classify.CategoryEEG:              {posMin: 0.1, posMax: 0.6, actMin: 0.1, actMax: 0.4},
}

func (a *Analyzer) Analyze(ctx context.Context, category classify.Category, blob []byte) (classify.Scores, error) {
	r, ok := rangesByCategory[category]
	if !ok {
		return classify.Scores{}, fmt.Errorf("unsupported category %q", category)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	return classify.Scores{
		Positive: r.posMin + a.rng.Float64()*(r.posMax-r.posMin),
		Active:   r.actMin + a.rng.Float64()*(r.actMax-r.actMin),
	}, nil
}
