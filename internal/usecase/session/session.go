// Package session holds the state of one upload and its analysis.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/coaching"
	"github.com/johnquangdev/convo-coach/internal/usecase/identity"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
)

// Action is one rendered action item with its replay data and control
type Action struct {
	Index   int
	Item    entities.ActionItem
	Binding coaching.ReplayBinding
	Control *playback.Control
}

// Session is everything known about one job. A new upload yields a new
// session; after analysis it is only read.
type Session struct {
	ID         uuid.UUID
	JobID      entities.JobID
	Speakers   []entities.Speaker
	Samples    map[entities.Speaker]string
	Identities *identity.Identities
	Report     *entities.Report
	Actions    []*Action
}

func newSession(up *entities.Upload) *Session {
	samples := make(map[entities.Speaker]string, len(up.Samples))
	for k, v := range up.Samples {
		samples[k] = v
	}
	speakers := make([]entities.Speaker, len(up.Speakers))
	copy(speakers, up.Speakers)

	return &Session{
		ID:       uuid.New(),
		JobID:    up.JobID,
		Speakers: speakers,
		Samples:  samples,
	}
}

// Analyzed reports whether the report is available
func (s *Session) Analyzed() bool {
	return s != nil && s.Report != nil
}

// Action returns the action at index
func (s *Session) Action(index int) (*Action, error) {
	if !s.Analyzed() {
		return nil, errors.ErrSessionNotReady()
	}
	if index < 0 || index >= len(s.Actions) {
		return nil, errors.ErrNotFound(fmt.Sprintf("action %d", index))
	}
	return s.Actions[index], nil
}

func bindActions(plan []entities.ActionItem, id *identity.Identities) []*Action {
	bindings := coaching.ResolvePlan(plan, id)
	out := make([]*Action, len(plan))
	for i := range plan {
		out[i] = &Action{
			Index:   i,
			Item:    plan[i],
			Binding: bindings[i],
			Control: playback.NewControl(i),
		}
	}
	return out
}
