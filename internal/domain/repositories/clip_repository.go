package repositories

import (
	"context"
	"io"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

// ClipRepository opens synthesized or sample clips by reference
type ClipRepository interface {
	Open(ctx context.Context, ref entities.PlaylistItem) (io.ReadCloser, error)
}
