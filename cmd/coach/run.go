package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/adapter/presenter"
	"github.com/johnquangdev/convo-coach/internal/adapter/terminal"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <recording>",
		Short: "Analyze a recording interactively and replay coached responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, args[0])
		},
	}
}

func (a *app) run(ctx context.Context, path string) error {
	client := a.backend()
	svc := session.NewService(client, a.logger)

	up, err := a.upload(ctx, svc, path)
	if err != nil {
		return err
	}

	prompter := terminal.NewPrompter(os.Stdin, os.Stdout)
	names, selected, err := prompter.PromptIdentities(up.Speakers, up.Samples)
	if stdErrors.Is(err, terminal.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}

	a.logger.Info("🧠 Analyzing conversation...", zap.String("job_id", string(up.JobID)))
	sess, err := svc.Analyze(ctx, up, names, selected)
	if err != nil {
		return err
	}

	renderer := terminal.NewRenderer(os.Stdout)
	renderer.RenderReport(presenter.ToReportResponse(sess))

	if !hasReplay(sess) {
		return nil
	}

	player, closePlayer, err := a.player(client)
	if err != nil {
		return err
	}
	defer closePlayer()

	orch := playback.NewOrchestrator(sess.JobID, client, player, terminal.NewStatusLine(os.Stdout), a.cfg.Backend.SynthesisTimeout, a.logger)

	for {
		index, ok, err := prompter.PromptAction(presenter.ToActionResponses(sess.Actions))
		if err != nil || !ok {
			return err
		}

		action, err := sess.Action(index)
		if err != nil {
			return err
		}
		if !action.Binding.Available() {
			fmt.Fprintln(os.Stdout, errors.UserMessage(errors.ErrReplayUnavailable(index)))
			continue
		}

		// replay errors are already on the status line
		if err := orch.StartReplay(ctx, action.Control, action.Binding); err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(os.Stdout)
				return nil
			}
			a.logger.Debug("replay.ended", zap.Error(err))
		}
		fmt.Fprintln(os.Stdout)
		renderer.RenderActions(presenter.ToActionResponses(sess.Actions))
	}
}

func hasReplay(s *session.Session) bool {
	for _, a := range s.Actions {
		if a.Binding.Available() {
			return true
		}
	}
	return false
}
