package presenter

import (
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/coaching"
	"github.com/johnquangdev/convo-coach/internal/usecase/identity"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
	"github.com/johnquangdev/convo-coach/internal/usecase/timeline"
)

func analyzedSession(t *testing.T) *session.Session {
	t.Helper()
	speakers := []entities.Speaker{"SPEAKER_00", "SPEAKER_01"}
	id, err := identity.Resolve(speakers, map[entities.Speaker]string{"SPEAKER_00": "Alice", "SPEAKER_01": "Bob"}, "SPEAKER_00")
	if err != nil {
		t.Fatalf("identity.Resolve: %v", err)
	}

	var dist entities.SpeakerMetric
	dist.Set("Alice", 60)
	dist.Set("Bob", 40)

	plan := []entities.ActionItem{
		{DisplayText: "Ask back", AudioTriggerSpeaker: "Bob", AudioTriggerText: "I cook a lot", AudioResponseText: "What's your signature dish?"},
		{Text: "AI Analysis Failed."},
	}
	report := &entities.Report{
		Score:   55,
		Verdict: "AWKWARD",
		DetailedMetrics: entities.DetailedMetrics{
			SpeakingDistribution: dist,
		},
		AIInsights: entities.AIInsights{ActionPlan: plan},
		Timeline: []entities.TimelineEvent{
			{Speaker: "Alice", Start: 0, End: 2, Text: "Hi"},
			{Speaker: "Bob", Start: 5, End: 6, Text: "Hey"},
		},
		PainPoints: []entities.PainPoint{{Label: "Painful Silence", Start: 2, End: 5}},
	}

	s := &session.Session{
		ID:         uuid.New(),
		JobID:      "J1",
		Speakers:   speakers,
		Samples:    map[entities.Speaker]string{"SPEAKER_00": "/static/samples/J1_SPEAKER_00.wav"},
		Identities: id,
		Report:     report,
	}
	// built when the report is rendered
	for i, item := range plan {
		s.Actions = append(s.Actions, &session.Action{
			Index:   i,
			Item:    item,
			Binding: coaching.Resolve(item, id),
			Control: playback.NewControl(i),
		})
	}
	return s
}

func TestToReportResponse(t *testing.T) {
	resp := ToReportResponse(analyzedSession(t))
	if resp == nil {
		t.Fatalf("expected a report")
	}
	if resp.Band != "warning" || resp.MainUser != "Alice" {
		t.Fatalf("header = %+v", resp)
	}
	if len(resp.Timeline) != 3 {
		t.Fatalf("timeline rows = %d", len(resp.Timeline))
	}
	if resp.Timeline[0].Side != timeline.SideLeft || resp.Timeline[1].Kind != timeline.KindPain || resp.Timeline[2].Side != timeline.SideRight {
		t.Fatalf("timeline = %+v", resp.Timeline)
	}
	if resp.Summary.MainUser == nil || resp.Summary.MainUser.SpeakingShare != 60 {
		t.Fatalf("summary = %+v", resp.Summary)
	}
}

func TestToActionResponses(t *testing.T) {
	s := analyzedSession(t)
	actions := ToActionResponses(s.Actions)
	if len(actions) != 2 {
		t.Fatalf("len = %d", len(actions))
	}
	if !actions[0].Replayable || actions[0].State == nil || actions[0].State.Phase != playback.PhaseIdle {
		t.Fatalf("first action = %+v", actions[0])
	}
	if actions[0].ReplayText != "What's your signature dish?" {
		t.Fatalf("replay text = %q", actions[0].ReplayText)
	}
	// text-only items still fall back to a trigger voice with two speakers
	if actions[1].DisplayText != "AI Analysis Failed." {
		t.Fatalf("second action = %+v", actions[1])
	}
}

func TestToSessionResponse(t *testing.T) {
	resp := ToSessionResponse(analyzedSession(t))
	if !resp.Analyzed || resp.MainUser != "Alice" {
		t.Fatalf("session = %+v", resp)
	}
	if !resp.Speakers[0].MainUser || resp.Speakers[1].MainUser {
		t.Fatalf("main user flags = %+v", resp.Speakers)
	}
	if resp.Speakers[1].Name != "Bob" || resp.Speakers[0].Sample == "" {
		t.Fatalf("speakers = %+v", resp.Speakers)
	}

	if ToReportResponse(&session.Session{}) != nil {
		t.Fatalf("unanalyzed session has no report")
	}
}
