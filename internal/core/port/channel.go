package port

import (
	"context"
	"time"
)

// ChannelInfo is a plain serialisable projection of a channel row. It is
// returned instead of store row objects so serialisation stays stable
// regardless of the access library.
type ChannelInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelRepository reads the channel registry.
type ChannelRepository interface {
	// List returns known channels ordered by id ascending, capped at
	// limit.
	List(ctx context.Context, limit int) ([]ChannelInfo, error)
}

// ChannelUseCase exposes the channel registry to adapters.
type ChannelUseCase interface {
	List(ctx context.Context, limit int) ([]ChannelInfo, error)
}
