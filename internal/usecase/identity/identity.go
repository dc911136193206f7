// Package identity reconciles diarization speaker IDs with the display names
// the user chose for them.
package identity

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

// Identities is the resolved name mapping of one analysis submission. It is
// built once and only read afterwards.
type Identities struct {
	speakers    []entities.Speaker
	names       map[entities.Speaker]entities.DisplayName
	lookup      map[entities.NameKey]entities.Speaker
	mainUser    entities.DisplayName
	mainSpeaker entities.Speaker
}

// Resolve builds the identities for speakers. inputs holds the raw text typed
// for each speaker; blank input keeps the speaker ID as its name. selected is
// the speaker chosen as main user, or empty for the first speaker.
func Resolve(speakers []entities.Speaker, inputs map[entities.Speaker]string, selected entities.Speaker) (*Identities, error) {
	id := &Identities{
		names:  make(map[entities.Speaker]entities.DisplayName, len(speakers)),
		lookup: make(map[entities.NameKey]entities.Speaker, len(speakers)),
	}

	for _, s := range speakers {
		if _, seen := id.names[s]; seen {
			continue
		}
		name := entities.DisplayName(s)
		if in := strings.TrimSpace(inputs[s]); in != "" {
			name = entities.DisplayName(in)
		}
		id.speakers = append(id.speakers, s)
		id.names[s] = name
		// later speakers shadow earlier ones on a name collision
		id.lookup[name.Key()] = s
	}

	if len(id.speakers) == 0 {
		return id, nil
	}

	if selected == "" {
		selected = id.speakers[0]
	}
	name, ok := id.names[selected]
	if !ok {
		return nil, errors.ErrInvalidArgument(fmt.Sprintf("speaker %q is not part of this job", selected))
	}
	id.mainUser = name
	id.mainSpeaker = selected

	return id, nil
}

// Speakers returns the speakers in session order
func (id *Identities) Speakers() []entities.Speaker {
	out := make([]entities.Speaker, len(id.speakers))
	copy(out, id.speakers)
	return out
}

// Len returns the number of speakers
func (id *Identities) Len() int {
	return len(id.speakers)
}

// NameOf returns the display name bound to s
func (id *Identities) NameOf(s entities.Speaker) (entities.DisplayName, bool) {
	name, ok := id.names[s]
	return name, ok
}

// Lookup resolves a display name case- and whitespace-insensitively
func (id *Identities) Lookup(name string) (entities.Speaker, bool) {
	key := entities.NormalizeName(name)
	if key == "" {
		return "", false
	}
	s, ok := id.lookup[key]
	return s, ok
}

// MainUser returns the display name of the selected main user
func (id *Identities) MainUser() entities.DisplayName {
	return id.mainUser
}

// MainSpeaker returns the speaker whose selector was checked
func (id *Identities) MainSpeaker() entities.Speaker {
	return id.mainSpeaker
}

// SpeakerMap returns a complete display name per speaker, the payload of the
// identity submission
func (id *Identities) SpeakerMap() map[entities.Speaker]entities.DisplayName {
	out := make(map[entities.Speaker]entities.DisplayName, len(id.names))
	for s, n := range id.names {
		out[s] = n
	}
	return out
}

// AnalyzeRequest builds the identity submission for job
func (id *Identities) AnalyzeRequest(job entities.JobID) entities.AnalyzeRequest {
	return entities.AnalyzeRequest{
		JobID:        job,
		SpeakerMap:   id.SpeakerMap(),
		MainUserName: id.mainUser,
	}
}
