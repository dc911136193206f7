// Package coaching binds AI action items to the speakers whose voices replay them.
package coaching

import (
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/identity"
)

// ReplayBinding is the static replay data attached to one rendered action
type ReplayBinding struct {
	DisplayText     string           `json:"display_text"`
	Context         string           `json:"context,omitempty"`
	Speaker         string           `json:"speaker,omitempty"`
	TriggerSpeaker  entities.Speaker `json:"trigger_speaker,omitempty"`
	TriggerText     string           `json:"trigger_text,omitempty"`
	ResponseSpeaker entities.Speaker `json:"response_speaker,omitempty"`
	ResponseText    string           `json:"response_text,omitempty"`
}

// Available reports whether a replay control is offered for the item
func (b ReplayBinding) Available() bool {
	return b.ResponseSpeaker != "" && b.TriggerSpeaker != ""
}

// SynthesisRequest builds the coach-audio request for job
func (b ReplayBinding) SynthesisRequest(job entities.JobID) entities.SynthesisRequest {
	return entities.SynthesisRequest{
		JobID:           job,
		TriggerSpeaker:  b.TriggerSpeaker,
		TriggerText:     b.TriggerText,
		ResponseSpeaker: b.ResponseSpeaker,
		ResponseText:    b.ResponseText,
	}
}

// Resolve computes the replay binding of item.
//
// The response speaker is always the main user's. The trigger speaker is the
// item's explicit trigger name when it resolves, otherwise the first session
// speaker other than the response speaker, otherwise empty.
func Resolve(item entities.ActionItem, id *identity.Identities) ReplayBinding {
	b := ReplayBinding{
		DisplayText:  item.HeadlineText(),
		Context:      item.Context,
		Speaker:      item.Speaker,
		TriggerText:  item.AudioTriggerText,
		ResponseText: item.ResponseText(),
	}
	if id == nil {
		return b
	}

	if s, ok := id.Lookup(string(id.MainUser())); ok {
		b.ResponseSpeaker = s
	}

	if item.AudioTriggerSpeaker != "" {
		if s, ok := id.Lookup(item.AudioTriggerSpeaker); ok {
			b.TriggerSpeaker = s
		}
	}
	if b.TriggerSpeaker == "" && id.Len() > 1 {
		for _, s := range id.Speakers() {
			if s != b.ResponseSpeaker {
				b.TriggerSpeaker = s
				break
			}
		}
	}

	return b
}

// ResolvePlan resolves every action of a plan, in order
func ResolvePlan(plan []entities.ActionItem, id *identity.Identities) []ReplayBinding {
	out := make([]ReplayBinding, len(plan))
	for i, item := range plan {
		out[i] = Resolve(item, id)
	}
	return out
}
