package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/internal/domain/repositories"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/audio/device"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/backend"
	"github.com/johnquangdev/convo-coach/internal/infrastructure/storage"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
	"github.com/johnquangdev/convo-coach/pkg/validator"
)

func (a *app) backend() *backend.Client {
	return backend.NewClient(a.cfg.Backend, validator.New(), a.logger)
}

// player wires clip fetching and the output device. The returned close
// func releases the device.
func (a *app) player(client *backend.Client) (*audio.Player, func(), error) {
	var objects repositories.ClipRepository
	if a.cfg.StorageEnabled() {
		a.logger.Info("📦 Connecting to object storage...", zap.String("endpoint", a.cfg.Storage.Endpoint))
		m, err := storage.NewMinIOClient(&a.cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		objects = m
	}

	out, err := device.Open(a.cfg.Audio)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("🔊 Audio output ready", zap.String("device", out.Name()))

	fetcher := audio.NewFetcher(client.BaseURL(), objects)
	closeFn := func() {
		if err := out.Close(); err != nil {
			a.logger.Warn("audio.close.failed", zap.Error(err))
		}
	}
	return audio.NewPlayer(fetcher, out, a.logger), closeFn, nil
}

// upload sends the media file and returns the fresh session
func (a *app) upload(ctx context.Context, svc *session.Service, path string) (*session.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media: %w", err)
	}
	defer f.Close()

	a.logger.Info("📤 Uploading recording...", zap.String("file", path))
	return svc.Upload(ctx, filepath.Base(path), f)
}
