package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"tilecast/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the tile, distribution and channel usecases, a payload
// validator and a logger for structured logging. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	tiles    port.TileUseCase
	dists    port.DistributionUseCase
	channels port.ChannelUseCase
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each operation on a new chi.Router.
func NewHandler(tiles port.TileUseCase, dists port.DistributionUseCase, channels port.ChannelUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		tiles:    tiles,
		dists:    dists,
		channels: channels,
		validate: validator.New(),
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/tiles", h.handleTileEnsure)
		r.Post("/tiles/match", h.handleTileMatch)
		r.Get("/distributions", h.handleDistributionsRecent)
		r.Post("/distributions", h.handleDistributionInsert)
		r.Get("/distributions/upcoming", h.handleDistributionsUpcoming)
		r.Get("/distributions/due", h.handleDistributionsDue)
		r.Delete("/distributions/{id}/schedule", h.handleDistributionUnschedule)
		r.Get("/channels", h.handleChannelsList)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON writes v with the given status. Encoding should rarely fail;
// failures are logged and the response left as is.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// queryInt parses an integer query parameter, returning def when the
// parameter is absent. The boolean is false on a malformed value.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
