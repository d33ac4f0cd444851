package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"tilecast/internal/core/port"
	"tilecast/internal/core/port/mocks"
)

func tileSpec() port.TileSpec {
	return port.TileSpec{
		TargetURL:    "https://example.com",
		Title:        "Example",
		Type:         "affiliate",
		ImageURI:     "https://cdn.example.com/a.png",
		Locale:       "en-US",
		ChannelID:    1,
		FrecentSites: []string{"a.com", "b.com"},
		Categories:   []string{"news"},
	}
}

func TestTileExistsReturnsMatch(t *testing.T) {
	repo := mocks.NewMockTileRepository(t)
	spec := tileSpec()

	repo.EXPECT().
		FindExisting(mock.Anything, spec).
		Return(&port.TileIDs{TileID: 11, AdgroupID: 3}, nil)

	svc := NewTileUseCase(repo)
	ids, err := svc.Exists(context.Background(), spec)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if ids == nil || ids.TileID != 11 || ids.AdgroupID != 3 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestTileExistsReturnsNilOnMiss(t *testing.T) {
	repo := mocks.NewMockTileRepository(t)
	spec := tileSpec()

	repo.EXPECT().
		FindExisting(mock.Anything, spec).
		Return(nil, nil)

	svc := NewTileUseCase(repo)
	ids, err := svc.Exists(context.Background(), spec)
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if ids != nil {
		t.Fatalf("expected nil on miss, got %v", ids)
	}
}

func TestTileEnsureReportsCreation(t *testing.T) {
	repo := mocks.NewMockTileRepository(t)
	spec := tileSpec()

	repo.EXPECT().
		Ensure(mock.Anything, spec).
		Return(port.TileIDs{TileID: 12, AdgroupID: 4}, true, nil)

	svc := NewTileUseCase(repo)
	ids, created, err := svc.Ensure(context.Background(), spec)
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if ids.TileID != 12 || ids.AdgroupID != 4 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
