package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/middleware"
	"pet-behavior-diary/internal/ports/generation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Post("/pets/{petID}/chatbot", queryHandler(svc, petsSvc))
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	PetID    string `json:"pet_id"`
	Response string `json:"response"`
}

// queryHandler godoc
// @Summary Consulta al chatbot
// @Description Responde una pregunta libre del dueño, anclada en las observaciones de hoy o de esta semana según la consulta.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body queryRequest true "Pregunta libre"
// @Success 200 {object} queryResponse
// @Failure 400 {string} string "invalid json / query faltante"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {string} string "generation failed"
// @Failure 503 {string} string "generation unavailable"
// @Router /pets/{petID}/chatbot [post]
func queryHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
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

		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Query) == "" {
			http.Error(w, "query is required", http.StatusBadRequest)
			return
		}

		answer, err := svc.Answer(r.Context(), claims.UserID, petID, req.Query)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, generation.ErrUnavailable):
				http.Error(w, "chatbot unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "chatbot failed", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, queryResponse{
			PetID:    petID,
			Response: answer,
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
