package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "insulin-worksheet/internal/adapters/storage/memory"
	pg "insulin-worksheet/internal/adapters/storage/postgres"
	"insulin-worksheet/internal/domain/dosing"
	"insulin-worksheet/internal/domain/followups"
	"insulin-worksheet/internal/domain/worksheets"
	"insulin-worksheet/internal/middleware"
	"insulin-worksheet/internal/platform/logger"
	"insulin-worksheet/internal/ports/auth"

	_ "insulin-worksheet/docs" // documentación OpenAPI generada por swag

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil, se arma desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		wsRepo worksheets.Repository
		fuRepo followups.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		wsRepo = pg.NewWorksheetsRepo(db)
		fuRepo = pg.NewFollowUpsRepo(db)
	} else {
		wsRepo = mem.NewWorksheetsRepo()
		fuRepo = mem.NewFollowUpsRepo()
	}

	// Services por módulo. El calculador es puro (sin repo) y lo comparten
	// el endpoint stateless y la creación de worksheets.
	calcSvc := dosing.NewService()
	worksheetsSvc := worksheets.NewService(wsRepo, calcSvc)
	followupsSvc := followups.NewService(fuRepo)

	// Rutas por módulo
	dosing.RegisterRoutes(r, calcSvc)
	worksheets.RegisterRoutes(r, worksheetsSvc)
	followups.RegisterRoutes(r, followupsSvc, worksheetsSvc)

	return r
}
