package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tilecast/internal/core/port"
)

// tilePayload is the wire form of a tile candidate. The set fields accept
// duplicates and arbitrary order; matching normalises them.
type tilePayload struct {
	TargetURL        string `json:"target_url" validate:"required,url"`
	BgColor          string `json:"bg_color"`
	TitleBgColor     string `json:"title_bg_color"`
	Title            string `json:"title" validate:"required"`
	Type             string `json:"type" validate:"required"`
	ImageURI         string `json:"image_uri" validate:"required"`
	EnhancedImageURI string `json:"enhanced_image_uri"`
	Locale           string `json:"locale" validate:"required"`

	AdgroupName string `json:"adgroup_name"`
	Explanation string `json:"explanation"`

	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	StartDateDt *time.Time `json:"start_date_dt"`
	EndDateDt   *time.Time `json:"end_date_dt"`

	FrequencyCapDaily *int32 `json:"frequency_cap_daily"`
	FrequencyCapTotal *int32 `json:"frequency_cap_total"`

	CheckInadjacency bool  `json:"check_inadjacency"`
	ChannelID        int64 `json:"channel_id" validate:"required,gt=0"`

	FrecentSites []string `json:"frecent_sites"`
	Categories   []string `json:"adgroup_categories"`
}

func (p tilePayload) spec() port.TileSpec {
	return port.TileSpec{
		TargetURL:         p.TargetURL,
		BgColor:           p.BgColor,
		TitleBgColor:      p.TitleBgColor,
		Title:             p.Title,
		Type:              p.Type,
		ImageURI:          p.ImageURI,
		EnhancedImageURI:  p.EnhancedImageURI,
		Locale:            p.Locale,
		AdgroupName:       p.AdgroupName,
		Explanation:       p.Explanation,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		StartDateDt:       p.StartDateDt,
		EndDateDt:         p.EndDateDt,
		FrequencyCapDaily: p.FrequencyCapDaily,
		FrequencyCapTotal: p.FrequencyCapTotal,
		CheckInadjacency:  p.CheckInadjacency,
		ChannelID:         p.ChannelID,
		FrecentSites:      p.FrecentSites,
		Categories:        p.Categories,
	}
}

func (h *Handler) decodeTilePayload(w http.ResponseWriter, r *http.Request) (tilePayload, bool) {
	var p tilePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return p, false
	}
	if err := h.validate.Struct(p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return p, false
	}
	return p, true
}

// handleTileEnsure creates the tile unless an equivalent one already
// exists. It returns HTTP 201 with the new identities on creation and
// HTTP 200 with the existing identities otherwise.
func (h *Handler) handleTileEnsure(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodeTilePayload(w, r)
	if !ok {
		return
	}
	ids, created, err := h.tiles.Ensure(r.Context(), p.spec())
	if err != nil {
		h.logger.Error("tile ensure error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, ids)
}

// handleTileMatch performs the lookup half of the protocol only. It
// returns HTTP 200 with the matched identities or HTTP 404 when no
// equivalent tile exists.
func (h *Handler) handleTileMatch(w http.ResponseWriter, r *http.Request) {
	p, ok := h.decodeTilePayload(w, r)
	if !ok {
		return
	}
	ids, err := h.tiles.Exists(r.Context(), p.spec())
	if err != nil {
		h.logger.Error("tile match error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, ids)
}
