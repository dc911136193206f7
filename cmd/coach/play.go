package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio/device"
)

func newPlayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play <clip>",
		Short: "Play a local WAV file or a clip reference through the output device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.play(ctx, args[0])
		},
	}
}

func (a *app) play(ctx context.Context, ref string) error {
	if _, err := os.Stat(ref); err == nil {
		return a.playFile(ctx, ref)
	}

	player, closePlayer, err := a.player(a.backend())
	if err != nil {
		return err
	}
	defer closePlayer()
	return player.Play(ctx, entities.PlaylistItem(ref))
}

func (a *app) playFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	clip, err := audio.Decode(f)
	if err != nil {
		return errors.ErrPlaybackFailed(path, err)
	}

	out, err := device.Open(a.cfg.Audio)
	if err != nil {
		return err
	}
	defer out.Close()

	a.logger.Info("▶ Playing",
		zap.String("file", path),
		zap.String("device", out.Name()),
		zap.Int("sample_rate", clip.SampleRate),
		zap.Int("channels", clip.Channels),
	)
	return out.Write(ctx, clip)
}
