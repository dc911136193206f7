package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/internal/adapter/handler"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
	"github.com/johnquangdev/convo-coach/pkg/config"
	pkgvalidator "github.com/johnquangdev/convo-coach/pkg/validator"
)

type serveOptions struct {
	names     map[string]string
	namesFile string
	main      string
}

func newServeCommand(a *app) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve <recording>",
		Short: "Analyze a recording with preset names and serve the report console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, args[0], opts)
		},
	}
	cmd.Flags().StringToStringVar(&opts.names, "name", nil, "speaker name as SPEAKER_ID=Name, repeatable")
	cmd.Flags().StringVar(&opts.namesFile, "names-file", "", "YAML file with main and names")
	cmd.Flags().StringVar(&opts.main, "main", "", "speaker ID of the main user (default: first speaker)")
	return cmd
}

// identities merges the names file with flags; flags win
func (o serveOptions) identities() (map[entities.Speaker]string, entities.Speaker, error) {
	inputs := make(map[entities.Speaker]string)
	selected := entities.Speaker(o.main)

	if o.namesFile != "" {
		file, err := config.LoadSpeakerNames(o.namesFile)
		if err != nil {
			return nil, "", err
		}
		for id, name := range file.Names {
			inputs[entities.Speaker(id)] = name
		}
		if selected == "" {
			selected = entities.Speaker(file.Main)
		}
	}
	for id, name := range o.names {
		inputs[entities.Speaker(id)] = name
	}
	return inputs, selected, nil
}

func (a *app) serve(ctx context.Context, path string, opts serveOptions) error {
	inputs, selected, err := opts.identities()
	if err != nil {
		return err
	}

	client := a.backend()
	svc := session.NewService(client, a.logger)

	up, err := a.upload(ctx, svc, path)
	if err != nil {
		return err
	}
	a.logger.Info("🧠 Analyzing conversation...", zap.String("job_id", string(up.JobID)))
	sess, err := svc.Analyze(ctx, up, inputs, selected)
	if err != nil {
		return err
	}

	player, closePlayer, err := a.player(client)
	if err != nil {
		return err
	}
	defer closePlayer()

	hub := handler.NewHub(a.logger)
	defer hub.Close()

	status := playback.MultiStatus(hub, playback.StatusFunc(func(s playback.State) {
		a.logger.Debug("replay.state",
			zap.Int("action", s.Action),
			zap.String("phase", string(s.Phase)),
			zap.Int("clip", s.Clip),
		)
	}))
	orch := playback.NewOrchestrator(sess.JobID, client, player, status, a.cfg.Backend.SynthesisTimeout, a.logger)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())

	// Replays must be over before the deferred device release runs.
	replayCtx, cancelReplays := context.WithCancel(ctx)
	console := handler.NewConsoleHandler(replayCtx, sess, orch, a.logger)
	defer func() {
		cancelReplays()
		console.Wait()
	}()
	handler.NewRouter(a.cfg, console, hub).Setup(e)

	errCh := make(chan error, 1)
	go func() {
		addr := a.cfg.GetServerAddr()
		a.logger.Info("🚀 Starting console", zap.String("addr", addr))
		a.logger.Info("🔗 Report", zap.String("url", fmt.Sprintf("http://%s/v1/report", addr)))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("🛑 Shutting down console...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.logger.Info("✅ Console stopped gracefully")
	return nil
}
