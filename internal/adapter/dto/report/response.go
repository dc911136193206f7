package report

import (
	"github.com/johnquangdev/convo-coach/internal/usecase/metrics"
	"github.com/johnquangdev/convo-coach/internal/usecase/playback"
	"github.com/johnquangdev/convo-coach/internal/usecase/timeline"
)

// SpeakerResponse represents one diarized speaker and its chosen name
type SpeakerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Sample   string `json:"sample,omitempty"`
	MainUser bool   `json:"main_user"`
}

// SessionResponse represents the console session
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	JobID     string            `json:"job_id"`
	Analyzed  bool              `json:"analyzed"`
	MainUser  string            `json:"main_user,omitempty"`
	Speakers  []SpeakerResponse `json:"speakers"`
}

// InsightResponse represents the per-pillar critique
type InsightResponse struct {
	Dominance     string `json:"dominance"`
	Interruptions string `json:"interruptions"`
	Silence       string `json:"silence"`
	Quality       string `json:"quality"`
}

// ActionResponse represents one action entry and its replay control
type ActionResponse struct {
	Index       int             `json:"index"`
	DisplayText string          `json:"display_text"`
	Context     string          `json:"context,omitempty"`
	Speaker     string          `json:"speaker,omitempty"`
	Replayable  bool            `json:"replayable"`
	TriggerText string          `json:"trigger_text,omitempty"`
	ReplayText  string          `json:"replay_text,omitempty"`
	State       *playback.State `json:"state,omitempty"`
}

// ReportResponse represents the render-ready report
type ReportResponse struct {
	JobID    string           `json:"job_id"`
	MainUser string           `json:"main_user"`
	Score    float64          `json:"score"`
	Verdict  string           `json:"verdict"`
	Band     string           `json:"band"`
	Summary  metrics.Summary  `json:"summary"`
	Analysis InsightResponse  `json:"analysis"`
	Timeline []timeline.Row   `json:"timeline"`
	Actions  []ActionResponse `json:"actions"`
}

// ReplayAcceptedResponse is returned when a replay starts
type ReplayAcceptedResponse struct {
	Index int    `json:"index"`
	Phase string `json:"phase"`
}
