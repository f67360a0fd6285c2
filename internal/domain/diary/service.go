package diary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-behavior-diary/internal/domain/observations"
	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/domain/timewindow"
	"pet-behavior-diary/internal/platform/logger"
	"pet-behavior-diary/internal/ports/generation"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// ObservationSource es el read-path de observaciones que consume el diario.
// *observations.Service lo satisface; degrada a slice vacío ante fallos.
type ObservationSource interface {
	ListWindow(ctx context.Context, ownerUserID, petID string, w timewindow.Window) []observations.Record
}

// ProfileSource provee el perfil de la mascota, best-effort.
// *pets.Service lo satisface.
type ProfileSource interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

// Service implementa el ciclo de vida del diario: cache, generación,
// placeholders y regeneración explícita. Una transición por request, sin
// regeneración en background.
type Service struct {
	entries  Repository
	obs      ObservationSource
	profiles ProfileSource
	gateway  generation.Gateway // nil => feature degradada a unavailable

	loc  *time.Location // offset local fijo, el mismo en todo el proceso
	msgs Messages
	log  logger.Logger
	now  func() time.Time
}

func NewService(entries Repository, obs ObservationSource, profiles ProfileSource, gateway generation.Gateway, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		entries:  entries,
		obs:      obs,
		profiles: profiles,
		gateway:  gateway,
		loc:      loc,
		msgs:     DefaultMessages(),
		log:      log,
		now:      time.Now,
	}
}

// SetMessages reemplaza el copy de placeholders (producto decide el texto).
func (s *Service) SetMessages(m Messages) {
	if m.PastEmpty != "" {
		s.msgs.PastEmpty = m.PastEmpty
	}
	if m.FutureEmpty != "" {
		s.msgs.FutureEmpty = m.FutureEmpty
	}
	if m.TodayEmpty != "" {
		s.msgs.TodayEmpty = m.TodayEmpty
	}
}

// Get resuelve el diario de (owner, pet, fecha).
//
// Orden de decisión (importa, no reordenar):
//  1. regenerate para una fecha != hoy se rechaza antes de tocar el store
//  2. una entrada persistida siempre gana sobre recomputar (salvo regenerate)
//  3. futuro / pasado sin entrada => placeholder, sin generación
//  4. hoy sin observaciones => placeholder, sin llamar al modelo ni persistir
//  5. hoy con observaciones => generar, persistir (upsert), devolver
func (s *Service) Get(ctx context.Context, ownerUserID, petID string, date timewindow.Date, regenerate bool) (Result, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(petID) == "" {
		return Result{}, ErrInvalidInput
	}

	today := timewindow.DateOf(s.now(), s.loc)

	if regenerate {
		if !date.Equal(today) {
			// Request inválido, no un downgrade silencioso a lectura.
			return Result{}, ErrInvalidInput
		}
		if err := s.entries.DeleteByDate(ctx, ownerUserID, petID, date); err != nil {
			s.log.Warn("diary delete failed before regenerate", map[string]any{
				"pet_id": petID,
				"date":   date.String(),
				"error":  err.Error(),
			})
		}
		return s.generate(ctx, ownerUserID, petID, date, StatusRegenerated)
	}

	entry, err := s.entries.GetByDate(ctx, ownerUserID, petID, date)
	if err == nil && strings.TrimSpace(entry.Content) != "" {
		return Result{Content: entry.Content, Status: StatusExists}, nil
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		// Falla de lectura se absorbe como "ausente": el peor caso es
		// regenerar la entrada de hoy de más.
		s.log.Warn("diary read failed, treating entry as absent", map[string]any{
			"pet_id": petID,
			"date":   date.String(),
			"error":  err.Error(),
		})
	}

	switch {
	case date.After(today):
		return Result{Content: s.msgs.FutureEmpty, Status: StatusFutureEmpty}, nil
	case date.Before(today):
		return Result{Content: s.msgs.PastEmpty, Status: StatusPastEmpty}, nil
	}

	return s.generate(ctx, ownerUserID, petID, date, StatusCreated)
}

func (s *Service) generate(ctx context.Context, ownerUserID, petID string, date timewindow.Date, status Status) (Result, error) {
	w := timewindow.DayRangeUTC(date, s.loc)
	records := s.obs.ListWindow(ctx, ownerUserID, petID, w)

	rctx := AssembleContext(records, s.loc)
	if rctx.IsEmpty() {
		return Result{Content: s.msgs.TodayEmpty, Status: StatusTodayEmpty}, nil
	}

	if s.gateway == nil {
		return Result{}, generation.ErrUnavailable
	}

	prompt := ComposeDiaryPrompt(s.profileText(ctx, petID), rctx, date)

	content, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		// Error terminal para este request: sin contenido parcial, sin retry.
		return Result{}, fmt.Errorf("diary generation failed: %w", err)
	}

	now := s.now()
	e := Entry{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		PetID:       petID,
		DiaryDate:   date,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.entries.Upsert(ctx, e); err != nil {
		// Se devuelve el contenido igual; la próxima lectura de hoy
		// simplemente vuelve a generar (ausencia + hoy => created).
		s.log.Warn("diary upsert failed, content returned anyway", map[string]any{
			"pet_id": petID,
			"date":   date.String(),
			"error":  err.Error(),
		})
	}

	return Result{Content: content, Status: status}, nil
}

// profileText trae la descripción de la mascota para el prompt.
// Best-effort: cualquier fallo => string vacío, nunca bloquea la generación.
func (s *Service) profileText(ctx context.Context, petID string) string {
	if s.profiles == nil {
		return ""
	}
	p, err := s.profiles.GetByID(ctx, petID)
	if err != nil {
		return ""
	}
	return pets.ProfileText(p)
}
