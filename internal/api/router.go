package api

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/redact"
)

// BasePath is the prefix under which the task endpoints are mounted.
const BasePath = "/api/v1"

//go:embed openapi.yaml
var openAPIDocument []byte

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig carries the pieces NewRouter wires together.
type RouterConfig struct {
	Tasks  *TaskHandler
	Ready  Pinger
	Logger *slog.Logger

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter builds the HTTP handler: standard chi middleware, tracing, CORS
// and rate limiting in front of the task routes, plus /health, /ready and
// the OpenAPI document.
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTraceMiddleware(log))
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Route(BasePath, func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		cfg.Tasks.Routes(r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writePlain(w, http.StatusOK, "OK", log)
	})

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		if _, err := w.Write(openAPIDocument); err != nil {
			log.Error("failed to write response", "error", err)
		}
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := cfg.Ready.Ping(ctx); err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
					"database unavailable: "+redact.Error(err), err)
				return
			}
		}
		writePlain(w, http.StatusOK, "OK", log)
	})

	return r
}

func writePlain(w http.ResponseWriter, status int, body string, log *slog.Logger) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error("failed to write response", "error", err)
	}
}
