// Package httpserver assembles the storefront HTTP stack.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/shoe-catalog/internal/catalog/format"
	custommw "finitefield.org/shoe-catalog/internal/catalog/httpserver/middleware"
	"finitefield.org/shoe-catalog/internal/catalog/httpserver/ui"
	"finitefield.org/shoe-catalog/internal/catalog/observability"
	"finitefield.org/shoe-catalog/internal/catalog/shoes"
	"finitefield.org/shoe-catalog/public"
)

// Config holds runtime options for the storefront HTTP server.
type Config struct {
	Address          string
	Logger           *zap.Logger
	ShoesService     shoes.Service
	Formatter        *format.Formatter
	NewReleaseWindow time.Duration
	Clock            func() time.Time
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.RequestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(30 * time.Second))
	router.Use(custommw.HTMX())

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, err
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handlers := ui.NewHandlers(ui.Dependencies{
		Shoes:            cfg.ShoesService,
		Formatter:        cfg.Formatter,
		NewReleaseWindow: cfg.NewReleaseWindow,
		Clock:            cfg.Clock,
	})
	mountStorefrontRoutes(router, handlers)

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

func mountStorefrontRoutes(router chi.Router, h *ui.Handlers) {
	router.Get("/", h.Index)
	router.Get("/shoe/{slug}", h.Detail)
	RegisterFragment(router, "/fragments/shoes/{slug}/card", h.CardFragment)
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
