package usecase

import (
	"context"

	"tilecast/internal/core/port"
)

// TileUseCase provides the tile deduplication and idempotent-create
// operations over a TileRepository.
type TileUseCase struct {
	repo port.TileRepository
}

// NewTileUseCase creates a new usecase with the provided repository.
func NewTileUseCase(repo port.TileRepository) *TileUseCase {
	return &TileUseCase{repo: repo}
}

// Exists returns the identities of a tile semantically equal to spec, or
// nil when no such tile exists.
func (u *TileUseCase) Exists(ctx context.Context, spec port.TileSpec) (*port.TileIDs, error) {
	return u.repo.FindExisting(ctx, spec)
}

// Create inserts the tile and its adgroup without any duplicate check.
// Callers following the check-then-act protocol call Exists first; Ensure
// is the race-free alternative.
func (u *TileUseCase) Create(ctx context.Context, spec port.TileSpec) (port.TileIDs, error) {
	return u.repo.Create(ctx, spec)
}

// Ensure returns the identities of an equivalent existing tile or creates
// one, serialised against concurrent calls for the same candidate. The
// boolean reports whether a new tile was created.
func (u *TileUseCase) Ensure(ctx context.Context, spec port.TileSpec) (port.TileIDs, bool, error) {
	return u.repo.Ensure(ctx, spec)
}
