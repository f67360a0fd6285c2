package observations

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Límite de upload: las señales crudas (audio corto, foto, ventana de EEG)
// no deberían superar esto.
const maxBlobBytes = 10 << 20 // 10MB

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/analysis", func(ar chi.Router) {
		ar.Post("/sound", analyzeHandler(svc, petsSvc, CategorySound))
		ar.Post("/facial-expression", analyzeHandler(svc, petsSvc, CategoryFacialExpression))
		ar.Post("/body-language", analyzeHandler(svc, petsSvc, CategoryBodyLanguage))
		ar.Post("/eeg", analyzeHandler(svc, petsSvc, CategoryEEG))
	})
}

type analysisResponse struct {
	PetID         string  `json:"pet_id"`
	Category      string  `json:"category"`
	PositiveScore float64 `json:"positive_score"`
	ActiveScore   float64 `json:"active_score"`
}

// analyzeHandler godoc
// @Summary Analizar señal de comportamiento
// @Description Clasifica la señal subida (multipart, campo `file`) y persiste la observación. `activity_note` es un campo de form opcional con contexto libre. Si la escritura al store falla, los scores igual se devuelven.
// @Tags analysis
// @Accept mpfd
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param file formData file true "Señal cruda (audio/imagen/EEG)"
// @Param activity_note formData string false "Contexto libre del momento"
// @Success 200 {object} analysisResponse
// @Failure 400 {string} string "archivo faltante / categoría inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/analysis/{category} [post]
func analyzeHandler(svc *Service, petsSvc *pets.Service, category Category) http.HandlerFunc {
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

		if err := r.ParseMultipartForm(maxBlobBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		blob, err := io.ReadAll(io.LimitReader(file, maxBlobBytes))
		if err != nil || len(blob) == 0 {
			http.Error(w, "file is empty or unreadable", http.StatusBadRequest)
			return
		}

		rec, err := svc.Ingest(r.Context(), claims.UserID, petID, IngestInput{
			Category:     category,
			Blob:         blob,
			ActivityNote: r.FormValue("activity_note"),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrAnalyzerUnavailable):
				http.Error(w, "analysis unavailable", http.StatusServiceUnavailable)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, analysisResponse{
			PetID:         rec.PetID,
			Category:      string(rec.Category),
			PositiveScore: rec.PositiveScore,
			ActiveScore:   rec.ActiveScore,
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
