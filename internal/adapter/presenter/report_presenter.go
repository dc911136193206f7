package presenter

import (
	"github.com/johnquangdev/convo-coach/internal/adapter/dto/report"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/internal/usecase/metrics"
	"github.com/johnquangdev/convo-coach/internal/usecase/session"
	"github.com/johnquangdev/convo-coach/internal/usecase/timeline"
)

// ToSessionResponse converts a Session to SessionResponse DTO
func ToSessionResponse(s *session.Session) *report.SessionResponse {
	if s == nil {
		return nil
	}

	resp := &report.SessionResponse{
		SessionID: s.ID.String(),
		JobID:     string(s.JobID),
		Analyzed:  s.Analyzed(),
		Speakers:  make([]report.SpeakerResponse, len(s.Speakers)),
	}
	if s.Identities != nil {
		resp.MainUser = string(s.Identities.MainUser())
	}

	for i, sp := range s.Speakers {
		item := report.SpeakerResponse{
			ID:     string(sp),
			Sample: s.Samples[sp],
		}
		if s.Identities != nil {
			if name, ok := s.Identities.NameOf(sp); ok {
				item.Name = string(name)
			}
			item.MainUser = sp == s.Identities.MainSpeaker()
		}
		resp.Speakers[i] = item
	}

	return resp
}

// ToReportResponse converts an analyzed Session to ReportResponse DTO
func ToReportResponse(s *session.Session) *report.ReportResponse {
	if !s.Analyzed() {
		return nil
	}
	r := s.Report

	var mainUser entities.DisplayName
	if s.Identities != nil {
		mainUser = s.Identities.MainUser()
	}

	events := timeline.Merge(r.Timeline, r.PainPoints)

	return &report.ReportResponse{
		JobID:    string(s.JobID),
		MainUser: string(mainUser),
		Score:    r.Score,
		Verdict:  r.Verdict,
		Band:     string(r.Band()),
		Summary:  metrics.Summarize(r.DetailedMetrics, mainUser),
		Analysis: report.InsightResponse{
			Dominance:     r.AIInsights.Analysis.Dominance,
			Interruptions: r.AIInsights.Analysis.Interruptions,
			Silence:       r.AIInsights.Analysis.Silence,
			Quality:       r.AIInsights.Analysis.Quality,
		},
		Timeline: timeline.Layout(events, r.DetailedMetrics.SpeakingDistribution),
		Actions:  ToActionResponses(s.Actions),
	}
}

// ToActionResponses converts session actions to ActionResponse DTOs. Items
// without both replay voices get no control state.
func ToActionResponses(actions []*session.Action) []report.ActionResponse {
	out := make([]report.ActionResponse, len(actions))
	for i, a := range actions {
		b := a.Binding
		item := report.ActionResponse{
			Index:       a.Index,
			DisplayText: b.DisplayText,
			Context:     b.Context,
			Speaker:     b.Speaker,
			Replayable:  b.Available(),
		}
		if item.Replayable {
			st := a.Control.State()
			item.State = &st
			item.TriggerText = b.TriggerText
			item.ReplayText = b.ResponseText
		}
		out[i] = item
	}
	return out
}
