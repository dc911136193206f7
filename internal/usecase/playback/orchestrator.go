// Package playback drives coached replays: one synthesis request followed by
// strictly sequential playback of the returned clips.
package playback

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/coaching"
)

// Synthesizer produces the clip playlist of one replay
type Synthesizer interface {
	SynthesizeCoachAudio(ctx context.Context, req entities.SynthesisRequest) (entities.Playlist, error)
}

// Player plays one clip and returns when it ends or fails
type Player interface {
	Play(ctx context.Context, clip entities.PlaylistItem) error
}

// Orchestrator runs replays for one job
type Orchestrator struct {
	job              entities.JobID
	synth            Synthesizer
	player           Player
	status           StatusIndicator
	synthesisTimeout time.Duration
	logger           *zap.Logger
}

// NewOrchestrator creates an orchestrator. A zero synthesisTimeout leaves the
// synthesis request unbounded.
func NewOrchestrator(
	job entities.JobID,
	synth Synthesizer,
	player Player,
	status StatusIndicator,
	synthesisTimeout time.Duration,
	logger *zap.Logger,
) *Orchestrator {
	if status == nil {
		status = MultiStatus()
	}
	return &Orchestrator{
		job:              job,
		synth:            synth,
		player:           player,
		status:           status,
		synthesisTimeout: synthesisTimeout,
		logger:           logger,
	}
}

// StartReplay runs one replay to completion on control c.
//
// It fails without side effects when the response speaker is missing or the
// control is already busy. Otherwise the control stays disabled until the
// sequence returns to idle, whatever the outcome.
func (o *Orchestrator) StartReplay(ctx context.Context, c *Control, b coaching.ReplayBinding) error {
	if err := o.begin(c, b); err != nil {
		return err
	}
	return o.run(ctx, c, b)
}

// Launch is StartReplay in the background. Precondition and busy failures are
// returned directly; the sequence result arrives on the channel.
func (o *Orchestrator) Launch(ctx context.Context, c *Control, b coaching.ReplayBinding) (<-chan error, error) {
	if err := o.begin(c, b); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- o.run(ctx, c, b)
	}()
	return done, nil
}

func (o *Orchestrator) begin(c *Control, b coaching.ReplayBinding) error {
	if b.ResponseSpeaker == "" {
		err := errors.ErrMainUserUnresolved()
		o.status.Publish(State{Action: c.ID(), Phase: PhaseError, Message: err.Message})
		return err
	}
	if !c.disable() {
		return errors.ErrReplayInProgress()
	}
	return nil
}

func (o *Orchestrator) run(ctx context.Context, c *Control, b coaching.ReplayBinding) error {
	// Idle goes out while the control is still held, so no new sequence
	// can publish ahead of it.
	defer func() {
		o.publish(c, State{Phase: PhaseIdle})
		c.enable()
	}()

	o.publish(c, State{Phase: PhaseRequesting})

	playlist, err := o.synthesize(ctx, b)
	if err != nil {
		o.fail(c, err)
		return err
	}
	if len(playlist) == 0 {
		err = errors.ErrEmptyPlaylist()
		o.fail(c, err)
		return err
	}

	if o.logger != nil {
		o.logger.Info("replay.playlist.received",
			zap.String("job_id", string(o.job)),
			zap.Int("action", c.ID()),
			zap.Int("clips", len(playlist)),
		)
	}

	for i, clip := range playlist {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		o.publish(c, State{Phase: PhasePlaying, Clip: i, Total: len(playlist)})

		if perr := o.player.Play(ctx, clip); perr != nil {
			// a failed clip is skipped, the sequence goes on
			if o.logger != nil {
				o.logger.Warn("replay.clip.failed",
					zap.Int("action", c.ID()),
					zap.Int("clip", i),
					zap.String("ref", string(clip)),
					zap.Error(perr),
				)
			}
		}
	}

	return nil
}

func (o *Orchestrator) synthesize(ctx context.Context, b coaching.ReplayBinding) (entities.Playlist, error) {
	if o.synthesisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.synthesisTimeout)
		defer cancel()
	}
	return o.synth.SynthesizeCoachAudio(ctx, b.SynthesisRequest(o.job))
}

func (o *Orchestrator) fail(c *Control, err error) {
	if o.logger != nil {
		o.logger.Error("replay.failed",
			zap.String("job_id", string(o.job)),
			zap.Int("action", c.ID()),
			zap.Error(err),
		)
	}
	o.publish(c, State{Phase: PhaseError, Message: errors.UserMessage(err)})
}

func (o *Orchestrator) publish(c *Control, s State) {
	s.Action = c.ID()
	c.record(s)
	o.status.Publish(s)
}
