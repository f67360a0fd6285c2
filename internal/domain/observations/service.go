package observations

import (
	"context"
	"errors"
	"strings"

	"pet-behavior-diary/internal/domain/timewindow"
	"pet-behavior-diary/internal/platform/logger"
	"pet-behavior-diary/internal/ports/classify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrAnalyzerUnavailable indica que no hay clasificador configurado.
	ErrAnalyzerUnavailable = errors.New("analyzer unavailable")
)

type Service struct {
	repo     Repository
	analyzer classify.Analyzer
	log      logger.Logger
}

func NewService(repo Repository, analyzer classify.Analyzer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		log:      log,
	}
}

type IngestInput struct {
	Category     Category
	Blob         []byte
	ActivityNote string
}

// Ingest clasifica el blob y persiste la observación resultante.
//
// El fallo de escritura se loguea y se traga: el caller igual recibe los
// scores. Una observación perdida no justifica romper el flujo de captura
// desde el dispositivo.
func (s *Service) Ingest(ctx context.Context, ownerUserID, petID string, in IngestInput) (Record, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(petID) == "" {
		return Record{}, ErrInvalidInput
	}
	if !in.Category.IsValid() {
		return Record{}, ErrInvalidInput
	}
	if len(in.Blob) == 0 {
		return Record{}, ErrInvalidInput
	}
	if s.analyzer == nil {
		return Record{}, ErrAnalyzerUnavailable
	}

	scores, err := s.analyzer.Analyze(ctx, classify.Category(in.Category), in.Blob)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:            uuid.NewString(),
		OwnerUserID:   ownerUserID,
		PetID:         petID,
		Category:      in.Category,
		PositiveScore: scores.Positive,
		ActiveScore:   scores.Active,
		ActivityNote:  strings.TrimSpace(in.ActivityNote),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Warn("observation write failed, scores still returned", map[string]any{
			"pet_id":   petID,
			"category": string(in.Category),
			"error":    err.Error(),
		})
	}

	return rec, nil
}

// ListWindow es el read-path que alimenta el armado de contexto.
// Un fallo del store degrada a "sin contexto" (slice vacío), nunca a error:
// una caída de storage no debe volverse un error para el usuario final.
func (s *Service) ListWindow(ctx context.Context, ownerUserID, petID string, w timewindow.Window) []Record {
	recs, err := s.repo.ListByWindow(ctx, ownerUserID, petID, w)
	if err != nil {
		s.log.Warn("observation query failed, degrading to empty context", map[string]any{
			"pet_id": petID,
			"error":  err.Error(),
		})
		return nil
	}
	return recs
}
