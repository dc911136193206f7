package audio

import (
	"bytes"
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/domain/repositories"
)

// Output renders a decoded clip and returns once it has been played
type Output interface {
	Write(ctx context.Context, clip *Clip) error
}

// Player fetches, decodes and plays one clip per call. Nothing is fetched
// before its turn.
type Player struct {
	clips  repositories.ClipRepository
	out    Output
	logger *zap.Logger
}

// NewPlayer creates a player
func NewPlayer(clips repositories.ClipRepository, out Output, logger *zap.Logger) *Player {
	return &Player{clips: clips, out: out, logger: logger}
}

// Play blocks until ref has been played or failed
func (p *Player) Play(ctx context.Context, ref entities.PlaylistItem) error {
	start := time.Now()

	rc, err := p.clips.Open(ctx, ref)
	if err != nil {
		return errors.ErrPlaybackFailed(string(ref), err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return errors.ErrPlaybackFailed(string(ref), err)
	}

	clip, err := Decode(bytes.NewReader(data))
	if err != nil {
		return errors.ErrPlaybackFailed(string(ref), err)
	}

	if err := p.out.Write(ctx, clip); err != nil {
		return errors.ErrPlaybackFailed(string(ref), err)
	}

	if p.logger != nil {
		p.logger.Debug("clip.played",
			zap.String("ref", string(ref)),
			zap.Int("frames", clip.Frames()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return nil
}
