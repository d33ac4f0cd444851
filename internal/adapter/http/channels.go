package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleChannelsList returns known channels ordered by id ascending,
// capped by the `limit` query parameter.
func (h *Handler) handleChannelsList(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 100)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	channels, err := h.channels.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("channels list error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, channels)
}
