package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"tilecast/internal/adapter/usecase"
	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
	"tilecast/internal/core/port/mocks"
)

type testRepos struct {
	tiles    *mocks.MockTileRepository
	dists    *mocks.MockDistributionRepository
	channels *mocks.MockChannelRepository
}

func newTestHandler(t *testing.T) (*Handler, testRepos) {
	repos := testRepos{
		tiles:    mocks.NewMockTileRepository(t),
		dists:    mocks.NewMockDistributionRepository(t),
		channels: mocks.NewMockChannelRepository(t),
	}
	h := NewHandler(
		usecase.NewTileUseCase(repos.tiles),
		usecase.NewDistributionUseCase(repos.dists),
		usecase.NewChannelUseCase(repos.channels),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return h, repos
}

func TestDueRejectsInvalidWindow(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, minutes := range []string{"0", "60", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/distributions/due?minutes="+minutes, nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("minutes=%s: got status %d, want 400", minutes, rec.Code)
		}
	}
}

func TestDueReturnsWindowRows(t *testing.T) {
	h, repos := newTestHandler(t)

	at := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	scheduled := at.Add(-10 * time.Minute)
	repos.dists.EXPECT().
		ListDue(mock.Anything, at.Add(-30*time.Minute), at).
		Return([]domain.Distribution{
			{ID: 5, URL: "https://cdn.example.com/5.json", ChannelID: 2, ScheduledStart: &scheduled},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/distributions/due?minutes=30&at="+at.Format(time.RFC3339), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"].(float64) != 5 {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestInsertForcesDeployedFalseWhenScheduled(t *testing.T) {
	h, repos := newTestHandler(t)

	repos.dists.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("port.ScheduleReq")).
		Run(func(_ context.Context, req port.ScheduleReq) {
			if req.Deployed {
				t.Errorf("deployed flag not forced to false")
			}
			if req.ScheduledAt == nil {
				t.Errorf("scheduled time lost in transport")
			}
		}).
		Return(nil)

	body := `{"url":"https://cdn.example.com/d.json","channel_id":1,"deployed":true,"scheduled_at":"2026-09-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/distributions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204: %s", rec.Code, rec.Body.String())
	}
}

func TestInsertRejectsInvalidPayload(t *testing.T) {
	h, _ := newTestHandler(t)

	// missing url and channel_id
	req := httptest.NewRequest(http.MethodPost, "/api/v1/distributions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestUnscheduleStatusCodes(t *testing.T) {
	h, repos := newTestHandler(t)

	repos.dists.EXPECT().Unschedule(mock.Anything, int64(8)).Return(nil)
	repos.dists.EXPECT().Unschedule(mock.Anything, int64(9)).Return(port.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/distributions/8/schedule", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/distributions/9/schedule", nil)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestTileEnsureStatusReflectsCreation(t *testing.T) {
	h, repos := newTestHandler(t)

	repos.tiles.EXPECT().
		Ensure(mock.Anything, mock.AnythingOfType("port.TileSpec")).
		Return(port.TileIDs{TileID: 21, AdgroupID: 7}, true, nil)

	body := `{
		"target_url": "https://example.com",
		"title": "Example",
		"type": "affiliate",
		"image_uri": "https://cdn.example.com/a.png",
		"locale": "en-US",
		"channel_id": 1,
		"frecent_sites": ["b.com", "a.com", "a.com"],
		"adgroup_categories": ["news"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tiles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var ids port.TileIDs
	if err := json.Unmarshal(rec.Body.Bytes(), &ids); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ids.TileID != 21 || ids.AdgroupID != 7 {
		t.Fatalf("unexpected ids: %+v", ids)
	}
}

func TestTileMatchMissIs404(t *testing.T) {
	h, repos := newTestHandler(t)

	repos.tiles.EXPECT().
		FindExisting(mock.Anything, mock.AnythingOfType("port.TileSpec")).
		Return(nil, nil)

	body := `{
		"target_url": "https://example.com",
		"title": "Example",
		"type": "affiliate",
		"image_uri": "https://cdn.example.com/a.png",
		"locale": "en-US",
		"channel_id": 1
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tiles/match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestChannelsList(t *testing.T) {
	h, repos := newTestHandler(t)

	repos.channels.EXPECT().
		List(mock.Anything, 2).
		Return([]port.ChannelInfo{
			{ID: 1, Name: "desktop"},
			{ID: 2, Name: "android"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/channels?limit=2", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var channels []port.ChannelInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &channels); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(channels) != 2 || channels[0].ID != 1 || channels[1].Name != "android" {
		t.Fatalf("unexpected channels: %v", channels)
	}
}
