package repositories

import (
	"context"
	"io"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

// AnalysisRepository is the conversation-analysis backend. Every call fails
// with an AppError when the body carries an error field.
type AnalysisRepository interface {
	// Upload sends a recording and returns the job handle and its speakers
	Upload(ctx context.Context, filename string, media io.Reader) (*entities.Upload, error)

	// Analyze submits the identities and returns the report
	Analyze(ctx context.Context, req entities.AnalyzeRequest) (*entities.Report, error)

	// SynthesizeCoachAudio returns the ordered clip playlist of one replay
	SynthesizeCoachAudio(ctx context.Context, req entities.SynthesisRequest) (entities.Playlist, error)
}
