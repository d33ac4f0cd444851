package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tilecast/internal/core/port"
)

// distributionPayload is the wire form of a distribution insert. A
// non-nil scheduled_at silently overrides the deployed flag.
type distributionPayload struct {
	URL         string     `json:"url" validate:"required,url"`
	ChannelID   int64      `json:"channel_id" validate:"required,gt=0"`
	Deployed    bool       `json:"deployed"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// distributionResp is the wire form of a full distribution row, used by
// the due listing.
type distributionResp struct {
	ID          int64      `json:"id"`
	URL         string     `json:"url"`
	ChannelID   int64      `json:"channel_id"`
	Deployed    bool       `json:"deployed"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// handleDistributionInsert inserts one distribution row. Every call
// creates a new row; there is no dedup check.
func (h *Handler) handleDistributionInsert(w http.ResponseWriter, r *http.Request) {
	var p distributionPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err := h.dists.Schedule(r.Context(), port.ScheduleReq{
		URL:         p.URL,
		ChannelID:   p.ChannelID,
		Deployed:    p.Deployed,
		ScheduledAt: p.ScheduledAt,
	})
	if err != nil {
		h.logger.Error("distribution insert error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDistributionsRecent returns per channel the most recent
// distributions, newest first, capped by the `limit` query parameter.
func (h *Handler) handleDistributionsRecent(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 100)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	channels, err := h.dists.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("recent distributions error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, channels)
}

// handleDistributionsUpcoming returns per channel the pending scheduled
// distributions. Accepts `limit`, `leniency_minutes` and `include_past`
// query parameters.
func (h *Handler) handleDistributionsUpcoming(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 100)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	leniency, ok := queryInt(r, "leniency_minutes", 15)
	if !ok {
		http.Error(w, "invalid leniency_minutes", http.StatusBadRequest)
		return
	}
	includePast := r.URL.Query().Get("include_past") == "true"

	channels, err := h.dists.ListUpcoming(r.Context(), limit, leniency, includePast)
	if err != nil {
		h.logger.Error("upcoming distributions error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, channels)
}

// handleDistributionsDue returns distributions whose scheduled start
// falls in the trailing window ending at `at` (default now). The
// `minutes` parameter is required and must be 1 through 59.
func (h *Handler) handleDistributionsDue(w http.ResponseWriter, r *http.Request) {
	minutes, ok := queryInt(r, "minutes", 0)
	if !ok {
		http.Error(w, "invalid minutes", http.StatusBadRequest)
		return
	}

	var at time.Time
	if raw := r.URL.Query().Get("at"); raw != "" {
		var err error
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid 'at' timestamp", http.StatusBadRequest)
			return
		}
	}

	due, err := h.dists.DueForDispatch(r.Context(), minutes, at)
	if err != nil {
		if errors.Is(err, port.ErrInvalidWindow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("due distributions error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]distributionResp, 0, len(due))
	for _, d := range due {
		resp = append(resp, distributionResp{
			ID:          d.ID,
			URL:         d.URL,
			ChannelID:   d.ChannelID,
			Deployed:    d.Deployed,
			ScheduledAt: d.ScheduledStart,
			CreatedAt:   d.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleDistributionUnschedule clears a pending schedule. Ids that are
// unknown, already fired or already unscheduled produce HTTP 404.
func (h *Handler) handleDistributionUnschedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.dists.Unschedule(r.Context(), id); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("unschedule error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
