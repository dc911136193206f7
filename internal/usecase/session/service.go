package session

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/domain/repositories"
	"github.com/johnquangdev/convo-coach/internal/usecase/identity"
)

// Service runs the upload and identity-submission steps against the backend
type Service struct {
	repo   repositories.AnalysisRepository
	logger *zap.Logger
}

// NewService creates a session service
func NewService(repo repositories.AnalysisRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Upload sends the recording and starts a fresh session
func (s *Service) Upload(ctx context.Context, filename string, media io.Reader) (*Session, error) {
	up, err := s.repo.Upload(ctx, filename, media)
	if err != nil {
		return nil, err
	}
	if len(up.Speakers) == 0 {
		return nil, errors.ErrNoSpeakers(string(up.JobID))
	}

	sess := newSession(up)
	if s.logger != nil {
		s.logger.Info("📤 upload accepted",
			zap.String("job_id", string(sess.JobID)),
			zap.String("session_id", sess.ID.String()),
			zap.Int("speakers", len(sess.Speakers)),
		)
	}
	return sess, nil
}

// Analyze resolves identities, submits them and waits for the report. The
// returned session replaces the uploaded one; the input is not modified.
func (s *Service) Analyze(ctx context.Context, up *Session, inputs map[entities.Speaker]string, selected entities.Speaker) (*Session, error) {
	id, err := identity.Resolve(up.Speakers, inputs, selected)
	if err != nil {
		return nil, err
	}

	report, err := s.repo.Analyze(ctx, id.AnalyzeRequest(up.JobID))
	if err != nil {
		return nil, err
	}

	next := *up
	next.Identities = id
	next.Report = report
	next.Actions = bindActions(report.AIInsights.ActionPlan, id)

	if s.logger != nil {
		available := 0
		for _, a := range next.Actions {
			if a.Binding.Available() {
				available++
			}
		}
		s.logger.Info("✅ report ready",
			zap.String("job_id", string(next.JobID)),
			zap.String("main_user", string(id.MainUser())),
			zap.Float64("score", report.Score),
			zap.Int("actions", len(next.Actions)),
			zap.Int("replayable", available),
		)
	}
	return &next, nil
}
