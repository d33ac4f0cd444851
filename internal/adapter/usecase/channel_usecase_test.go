package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"tilecast/internal/core/port"
	"tilecast/internal/core/port/mocks"
)

func TestChannelListDefaultsLimit(t *testing.T) {
	repo := mocks.NewMockChannelRepository(t)
	repo.EXPECT().
		List(mock.Anything, 100).
		Return([]port.ChannelInfo{{ID: 1, Name: "desktop", CreatedAt: time.Now()}}, nil)

	svc := NewChannelUseCase(repo)
	channels, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(channels) != 1 || channels[0].Name != "desktop" {
		t.Fatalf("unexpected channels: %v", channels)
	}
}
