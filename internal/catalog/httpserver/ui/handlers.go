// Package ui serves the storefront pages and fragments.
package ui

import (
	"errors"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"finitefield.org/shoe-catalog/internal/catalog/card"
	"finitefield.org/shoe-catalog/internal/catalog/format"
	"finitefield.org/shoe-catalog/internal/catalog/markdown"
	"finitefield.org/shoe-catalog/internal/catalog/observability"
	"finitefield.org/shoe-catalog/internal/catalog/shoes"
	shoestpl "finitefield.org/shoe-catalog/internal/catalog/templates/shoes"
)

// Dependencies collects the collaborators required by the UI handlers.
type Dependencies struct {
	Shoes            shoes.Service
	Formatter        *format.Formatter
	NewReleaseWindow time.Duration
	Clock            func() time.Time
}

// Handlers exposes HTTP handlers for storefront pages and fragments.
type Handlers struct {
	shoes     shoes.Service
	formatter *format.Formatter
	window    time.Duration
	clock     func() time.Time
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.Shoes
	if service == nil {
		service = shoes.NewStaticService(nil)
	}
	formatter := deps.Formatter
	if formatter == nil {
		formatter = format.New(format.DefaultCurrency, language.English)
	}
	window := deps.NewReleaseWindow
	if window <= 0 {
		window = card.DefaultNewReleaseWindow
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Handlers{
		shoes:     service,
		formatter: formatter,
		window:    window,
		clock:     clock,
	}
}

func (h *Handlers) cardOptions() shoestpl.CardOptions {
	return shoestpl.CardOptions{
		Formatter:        h.formatter,
		NewReleaseWindow: h.window,
		Now:              h.clock(),
	}
}

// Index renders the catalog grid.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	order := shoes.ParseSort(r.URL.Query().Get("sort"))
	listings, err := h.shoes.List(r.Context(), order)
	if err != nil {
		observability.FromContext(r.Context()).Error("list shoes failed", zap.Error(err))
		http.Error(w, "Could not load the catalog. Please try again later.", http.StatusBadGateway)
		return
	}

	payload := shoestpl.BuildIndexPageData(listings, order, h.cardOptions())
	templ.Handler(shoestpl.Index(payload)).ServeHTTP(w, r)
}

// Detail renders a single listing page.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.lookup(w, r)
	if !ok {
		return
	}

	description, err := markdown.Render(listing.Description)
	if err != nil {
		observability.FromContext(r.Context()).Warn("render description failed",
			zap.String("slug", listing.Slug), zap.Error(err))
		description = ""
	}

	payload := shoestpl.BuildDetailPageData(listing, description, h.cardOptions())
	templ.Handler(shoestpl.Detail(payload)).ServeHTTP(w, r)
}

// CardFragment renders a single card for htmx swaps.
func (h *Handlers) CardFragment(w http.ResponseWriter, r *http.Request) {
	listing, ok := h.lookup(w, r)
	if !ok {
		return
	}
	props := shoestpl.CardPayload(listing, h.cardOptions())
	templ.Handler(shoestpl.CardFragment(props)).ServeHTTP(w, r)
}

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (shoes.Listing, bool) {
	slug := chi.URLParam(r, "slug")
	listing, err := h.shoes.Get(r.Context(), slug)
	switch {
	case errors.Is(err, shoes.ErrNotFound):
		http.NotFound(w, r)
		return shoes.Listing{}, false
	case err != nil:
		observability.FromContext(r.Context()).Error("get shoe failed", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "Could not load this shoe. Please try again later.", http.StatusBadGateway)
		return shoes.Listing{}, false
	}
	return listing, true
}
