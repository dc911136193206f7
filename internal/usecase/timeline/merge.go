// Package timeline merges speech turns and pain points into one ordered,
// render-ready sequence.
package timeline

import (
	"math"
	"sort"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

// Kind discriminates merged events
type Kind string

const (
	KindSpeech Kind = "speech"
	KindPain   Kind = "pain"
)

// Side is the column a row renders in
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideCenter Side = "center"
)

// MergedEvent is either a speech turn or a pain point. Exactly one of
// Speech and Pain is set, according to Kind.
type MergedEvent struct {
	Kind   Kind                    `json:"type"`
	Start  float64                 `json:"start"`
	End    float64                 `json:"end"`
	Speech *entities.TimelineEvent `json:"speech,omitempty"`
	Pain   *entities.PainPoint     `json:"pain,omitempty"`
}

// Merge concatenates speech then pain points and stable-sorts by start, so
// equal starts keep source order with speech ahead of pain.
func Merge(speech []entities.TimelineEvent, pains []entities.PainPoint) []MergedEvent {
	out := make([]MergedEvent, 0, len(speech)+len(pains))

	for i := range speech {
		ev := speech[i]
		out = append(out, MergedEvent{Kind: KindSpeech, Start: ev.Start, End: ev.End, Speech: &ev})
	}
	for i := range pains {
		p := pains[i]
		out = append(out, MergedEvent{Kind: KindPain, Start: p.Start, End: p.End, Pain: &p})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}

// Row is one positioned line of the rendered timeline
type Row struct {
	Kind     Kind             `json:"type"`
	Side     Side             `json:"side"`
	Start    float64          `json:"start"`
	End      float64          `json:"end"`
	Speaker  entities.Speaker `json:"speaker,omitempty"`
	Text     string           `json:"text,omitempty"`
	Label    string           `json:"label,omitempty"`
	Desc     string           `json:"desc,omitempty"`
	Duration float64          `json:"duration,omitempty"`
	Severity float64          `json:"severity,omitempty"`
}

// Layout positions merged events. A speech row goes left only when its
// speaker is first in the distribution's key order; every other speaker,
// including ones missing from the distribution, goes right. With more than
// two speakers all but the first share the right column.
func Layout(events []MergedEvent, distribution entities.SpeakerMetric) []Row {
	rows := make([]Row, 0, len(events))
	for _, ev := range events {
		switch ev.Kind {
		case KindSpeech:
			side := SideRight
			if distribution.IndexOf(ev.Speech.Speaker) == 0 {
				side = SideLeft
			}
			rows = append(rows, Row{
				Kind:    KindSpeech,
				Side:    side,
				Start:   ev.Start,
				End:     ev.End,
				Speaker: ev.Speech.Speaker,
				Text:    ev.Speech.Text,
			})
		case KindPain:
			rows = append(rows, Row{
				Kind:     KindPain,
				Side:     SideCenter,
				Start:    ev.Start,
				End:      ev.End,
				Label:    ev.Pain.Label,
				Desc:     ev.Pain.Desc,
				Duration: math.Round(ev.End - ev.Start),
				Severity: ev.Pain.Severity,
			})
		}
	}
	return rows
}
