package diary

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/domain/timewindow"
	"pet-behavior-diary/internal/middleware"
	"pet-behavior-diary/internal/ports/generation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/diary/{date}", getDiaryHandler(svc, petsSvc))
}

type diaryResponse struct {
	PetID     string `json:"pet_id"`
	DiaryDate string `json:"diary_date"`
	Content   string `json:"content"`
	Status    Status `json:"status"`
}

// getDiaryHandler godoc
// @Summary Diario del día
// @Description Devuelve la entrada de diario de la mascota para la fecha dada (YYYY-MM-DD, día local). Si la entrada de hoy no existe y hay observaciones, se genera y persiste. `regenerate=true` solo es válido para hoy: borra la entrada y la vuelve a generar.
// @Tags diary
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param date path string true "Fecha local YYYY-MM-DD"
// @Param regenerate query bool false "Regenerar la entrada de hoy"
// @Success 200 {object} diaryResponse
// @Failure 400 {string} string "fecha inválida / regenerate para una fecha distinta de hoy"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {string} string "generation failed"
// @Failure 503 {string} string "generation unavailable"
// @Router /pets/{petID}/diary/{date} [get]
func getDiaryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := petsSvc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if p.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		date, err := timewindow.ParseDate(chi.URLParam(r, "date"))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		regenerate := strings.EqualFold(r.URL.Query().Get("regenerate"), "true")

		res, err := svc.Get(r.Context(), claims.UserID, petID, date, regenerate)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "regenerate is only valid for today", http.StatusBadRequest)
			case errors.Is(err, generation.ErrUnavailable):
				http.Error(w, "diary generation unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "diary generation failed", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, diaryResponse{
			PetID:     petID,
			DiaryDate: date.String(),
			Content:   res.Content,
			Status:    res.Status,
		})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
