package handler

import (
	"context"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/adapter/dto/report"
	"github.com/johnquangdev/convo-coach/internal/adapter/presenter"
	"github.com/johnquangdev/convo-coach/internal/usecase/coaching"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
)

// Replayer starts a replay sequence in the background
type Replayer interface {
	Launch(ctx context.Context, c *playback.Control, b coaching.ReplayBinding) (<-chan error, error)
}

// Console serves one analyzed session over HTTP
type Console struct {
	ctx     context.Context
	session *session.Session
	replays Replayer
	logger  *zap.Logger

	inflight sync.WaitGroup
}

// NewConsoleHandler creates a console handler. Replays run under ctx, not
// under the request that started them.
func NewConsoleHandler(ctx context.Context, s *session.Session, replays Replayer, logger *zap.Logger) *Console {
	return &Console{
		ctx:     ctx,
		session: s,
		replays: replays,
		logger:  logger,
	}
}

// Session handles GET /v1/session
func (h *Console) Session(c echo.Context) error {
	if h.session == nil {
		return HandleError(h.logger, c, errors.ErrSessionNotReady())
	}
	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(h.session))
}

// Report handles GET /v1/report
func (h *Console) Report(c echo.Context) error {
	if !h.session.Analyzed() {
		return HandleError(h.logger, c, errors.ErrSessionNotReady())
	}
	return HandleSuccess(h.logger, c, presenter.ToReportResponse(h.session))
}

// Actions handles GET /v1/actions
func (h *Console) Actions(c echo.Context) error {
	if !h.session.Analyzed() {
		return HandleError(h.logger, c, errors.ErrSessionNotReady())
	}
	return HandleSuccess(h.logger, c, presenter.ToActionResponses(h.session.Actions))
}

// Replay handles POST /v1/actions/:index/replay.
// The sequence keeps running after the 202 is written; progress goes to
// the status indicators.
func (h *Console) Replay(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("action index must be an integer"))
	}

	action, err := h.session.Action(index)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if !action.Binding.Available() {
		return HandleError(h.logger, c, errors.ErrReplayUnavailable(index))
	}

	done, err := h.replays.Launch(h.ctx, action.Control, action.Binding)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	h.inflight.Add(1)
	go h.await(index, done)

	return HandleAccepted(h.logger, c, report.ReplayAcceptedResponse{
		Index: index,
		Phase: string(playback.PhaseRequesting),
	})
}

// Wait blocks until every replay started by this handler has ended. Cancel
// the handler's context first to cut them short.
func (h *Console) Wait() {
	h.inflight.Wait()
}

func (h *Console) await(index int, done <-chan error) {
	defer h.inflight.Done()
	err := <-done
	if h.logger == nil {
		return
	}
	if err != nil {
		h.logger.Warn("replay.finished", zap.Int("action", index), zap.Error(err))
		return
	}
	h.logger.Info("replay.finished", zap.Int("action", index))
}
