package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-behavior-diary/internal/domain/diary"
	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/domain/timewindow"
	"pet-behavior-diary/internal/platform/logger"
	"pet-behavior-diary/internal/ports/generation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service responde consultas libres sobre el comportamiento de la mascota,
// ancladas en la ventana de observaciones que indique la consulta
// (hoy o esta semana).
type Service struct {
	obs      diary.ObservationSource
	profiles diary.ProfileSource
	gateway  generation.Gateway // nil => feature degradada a unavailable

	loc *time.Location
	log logger.Logger
	now func() time.Time
}

func NewService(obs diary.ObservationSource, profiles diary.ProfileSource, gateway generation.Gateway, loc *time.Location, log logger.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		obs:      obs,
		profiles: profiles,
		gateway:  gateway,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// Answer arma la respuesta: clasifica ventana, recupera observaciones,
// compone el prompt (con o sin contexto) y llama al modelo.
//
// Un fallo del store degrada a contexto vacío, no a error. Un fallo del
// gateway sí es terminal para el request.
func (s *Service) Answer(ctx context.Context, ownerUserID, petID, queryText string) (string, error) {
	if strings.TrimSpace(ownerUserID) == "" || strings.TrimSpace(petID) == "" || strings.TrimSpace(queryText) == "" {
		return "", ErrInvalidInput
	}
	if s.gateway == nil {
		return "", generation.ErrUnavailable
	}

	today := timewindow.DateOf(s.now(), s.loc)

	var (
		w     timewindow.Window
		label string
	)
	switch SelectWindow(queryText) {
	case WindowWeekly:
		w = timewindow.WeekRangeUTC(today, s.loc)
		label = "this week"
	default:
		w = timewindow.DayRangeUTC(today, s.loc)
		label = "today"
	}

	records := s.obs.ListWindow(ctx, ownerUserID, petID, w)
	rctx := diary.AssembleContext(records, s.loc)

	prompt := diary.ComposeQueryPrompt(s.profileText(ctx, petID), rctx, queryText, label)

	answer, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	return answer, nil
}

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
