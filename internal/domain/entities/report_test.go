package entities

import (
	"encoding/json"
	"testing"
)

const sampleReport = `{
	"score": 47,
	"verdict": "AWKWARD",
	"detailed_metrics": {
		"duration_total": 64.2,
		"speaking_distribution": {"Alice": 71.3, "Bob": 22.1},
		"interruptions": {"Alice": 2, "Bob": 0},
		"silence_stats": {"count": 2, "avg_duration": 3.1, "total_duration": 6.2},
		"engagement_stats": {
			"questions_asked": {"Alice": 0, "Bob": 3},
			"avg_words_per_turn": {"Alice": 18.5, "Bob": 6.0}
		}
	},
	"ai_insights": {
		"analysis": {"dominance": "d", "interruptions": "i", "silence": "s", "quality": "q"},
		"action_plan": [{"display_text": "Ask more", "audio_trigger_speaker": "Bob"}]
	},
	"timeline": [{"start": 0.0, "end": 4.2, "speaker": "Alice", "text": "Hi", "type": "speech"}],
	"pain_points": [{"start": 4.2, "end": 7.9, "label": "Painful Silence", "desc": "long", "severity": 0.9}]
}`

func TestReport_Decode(t *testing.T) {
	var r Report
	if err := json.Unmarshal([]byte(sampleReport), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Score != 47 || r.Verdict != "AWKWARD" {
		t.Fatalf("unexpected header: %v %q", r.Score, r.Verdict)
	}
	if r.DetailedMetrics.SpeakingDistribution.IndexOf("Bob") != 1 {
		t.Fatalf("distribution order lost")
	}
	if r.DetailedMetrics.SilenceStats.Count != 2 {
		t.Fatalf("silence count = %d", r.DetailedMetrics.SilenceStats.Count)
	}
	if v, _ := r.DetailedMetrics.EngagementStats.QuestionsAsked.Get("Bob"); v != 3 {
		t.Fatalf("questions(Bob) = %v", v)
	}
	if len(r.AIInsights.ActionPlan) != 1 || r.AIInsights.ActionPlan[0].AudioTriggerSpeaker != "Bob" {
		t.Fatalf("unexpected action plan: %+v", r.AIInsights.ActionPlan)
	}
	if len(r.Timeline) != 1 || r.Timeline[0].Speaker != "Alice" {
		t.Fatalf("unexpected timeline: %+v", r.Timeline)
	}
	if len(r.PainPoints) != 1 || r.PainPoints[0].Severity != 0.9 {
		t.Fatalf("unexpected pain points: %+v", r.PainPoints)
	}
}

func TestReport_Band(t *testing.T) {
	cases := []struct {
		score float64
		want  VerdictBand
	}{
		{0, VerdictBandGood},
		{40, VerdictBandGood},
		{41, VerdictBandWarning},
		{70, VerdictBandWarning},
		{71, VerdictBandBad},
		{100, VerdictBandBad},
	}
	for _, tc := range cases {
		r := Report{Score: tc.score}
		if got := r.Band(); got != tc.want {
			t.Fatalf("Band(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
