package usecase

import (
	"context"

	"tilecast/internal/core/port"
)

// ChannelUseCase exposes the read-only channel registry.
type ChannelUseCase struct {
	repo port.ChannelRepository
}

// NewChannelUseCase creates a new usecase with the provided repository.
func NewChannelUseCase(repo port.ChannelRepository) *ChannelUseCase {
	return &ChannelUseCase{repo: repo}
}

// List returns known channels ordered by id ascending, capped at limit
// (100 when non-positive).
func (u *ChannelUseCase) List(ctx context.Context, limit int) ([]port.ChannelInfo, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return u.repo.List(ctx, limit)
}
