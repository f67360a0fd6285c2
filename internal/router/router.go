package router

import (
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	mockclassify "pet-behavior-diary/internal/adapters/classify/mock"
	genopenai "pet-behavior-diary/internal/adapters/generation/openai"
	mem "pet-behavior-diary/internal/adapters/storage/memory"
	pg "pet-behavior-diary/internal/adapters/storage/postgres"
	"pet-behavior-diary/internal/domain/chat"
	"pet-behavior-diary/internal/domain/diary"
	"pet-behavior-diary/internal/domain/observations"
	"pet-behavior-diary/internal/domain/pets"
	"pet-behavior-diary/internal/middleware"
	"pet-behavior-diary/internal/platform/logger"
	"pet-behavior-diary/internal/ports/auth"
	"pet-behavior-diary/internal/ports/classify"
	"pet-behavior-diary/internal/ports/generation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Offset local fijo por defecto: KST (UTC+9), minutos.
const defaultUTCOffsetMin = 9 * 60

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: gateway de generación. Si es nil se intenta armar desde
	// env (OPENAI_API_KEY); sin config, diario y chatbot quedan
	// "unavailable" pero el proceso arranca igual.
	Gateway generation.Gateway

	// Opcional: clasificador de señales. nil => mock.
	Analyzer classify.Analyzer

	// Opcional: offset local fijo para ventanas de tiempo.
	// nil => DIARY_UTC_OFFSET_MIN (default KST). Todo el proceso usa el
	// mismo offset; no hay soporte DST.
	Location *time.Location

	// Opcional: logger. nil => desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	loc := opts.Location
	if loc == nil {
		loc = localOffsetFromEnv()
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres open failed, falling back to in-memory", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	var (
		petRepo   pets.Repository
		obsRepo   observations.Repository
		diaryRepo diary.Repository
	)

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		obsRepo = pg.NewObservationsRepo(db)
		diaryRepo = pg.NewDiariesRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		obsRepo = mem.NewObservationRepo()
		diaryRepo = mem.NewDiaryRepo()
	}

	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = mockclassify.NewAnalyzer(time.Now().UnixNano())
	}

	// Gateway: se arma una sola vez al inicio. Si falla la config, la
	// feature degrada a "unavailable"; no hay reinicialización en caliente.
	gateway := opts.Gateway
	if gateway == nil {
		if gw := genopenai.NewGateway(genopenai.ConfigFromEnv()); gw != nil {
			gateway = gw
		} else {
			log.Warn("generation gateway not configured, diary and chatbot degraded", nil)
		}
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	obsSvc := observations.NewService(obsRepo, analyzer, log)
	diarySvc := diary.NewService(diaryRepo, obsSvc, petsSvc, gateway, loc, log)
	chatSvc := chat.NewService(obsSvc, petsSvc, gateway, loc, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	observations.RegisterRoutes(r, obsSvc, petsSvc)
	diary.RegisterRoutes(r, diarySvc, petsSvc)
	chat.RegisterRoutes(r, chatSvc, petsSvc)

	return r
}

// localOffsetFromEnv construye la zona de offset fijo desde
// DIARY_UTC_OFFSET_MIN (minutos respecto de UTC, default KST +540).
func localOffsetFromEnv() *time.Location {
	offsetMin := defaultUTCOffsetMin
	if v := os.Getenv("DIARY_UTC_OFFSET_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offsetMin = n
		}
	}
	return time.FixedZone("local", offsetMin*60)
}
