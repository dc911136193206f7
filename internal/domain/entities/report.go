package entities

// Report is the structured analysis result of one job
type Report struct {
	Score           float64         `json:"score" validate:"gte=0,lte=100"`
	Verdict         string          `json:"verdict"`
	DetailedMetrics DetailedMetrics `json:"detailed_metrics"`
	AIInsights      AIInsights      `json:"ai_insights"`
	Timeline        []TimelineEvent `json:"timeline"`
	PainPoints      []PainPoint     `json:"pain_points"`
}

// DetailedMetrics holds the per-speaker behavioral metrics. After analysis
// the speaker keys are display labels, in first-appearance order.
type DetailedMetrics struct {
	DurationTotal        float64         `json:"duration_total"`
	SpeakingDistribution SpeakerMetric   `json:"speaking_distribution"`
	Interruptions        SpeakerMetric   `json:"interruptions"`
	SilenceStats         SilenceStats    `json:"silence_stats"`
	EngagementStats      EngagementStats `json:"engagement_stats"`
}

type SilenceStats struct {
	Count         int     `json:"count"`
	AvgDuration   float64 `json:"avg_duration"`
	TotalDuration float64 `json:"total_duration"`
}

type EngagementStats struct {
	QuestionsAsked  SpeakerMetric `json:"questions_asked"`
	AvgWordsPerTurn SpeakerMetric `json:"avg_words_per_turn"`
}

// AIInsights is the generated coaching block
type AIInsights struct {
	Analysis   InsightAnalysis `json:"analysis"`
	ActionPlan []ActionItem    `json:"action_plan"`
}

// InsightAnalysis is the per-pillar critique text
type InsightAnalysis struct {
	Dominance     string `json:"dominance"`
	Interruptions string `json:"interruptions"`
	Silence       string `json:"silence"`
	Quality       string `json:"quality"`
}

// TimelineEvent is one speech turn
type TimelineEvent struct {
	Speaker Speaker `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// PainPoint is a flagged interval with no speaker attribution
type PainPoint struct {
	Label    string  `json:"label"`
	Desc     string  `json:"desc"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Severity float64 `json:"severity"`
}

// VerdictBand buckets a score the way the score ring colours it
type VerdictBand string

const (
	VerdictBandGood    VerdictBand = "good"
	VerdictBandWarning VerdictBand = "warning"
	VerdictBandBad     VerdictBand = "bad"
)

// Band returns the colour band of the report score
func (r *Report) Band() VerdictBand {
	switch {
	case r.Score > 70:
		return VerdictBandBad
	case r.Score > 40:
		return VerdictBandWarning
	default:
		return VerdictBandGood
	}
}
