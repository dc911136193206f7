// Package metrics reduces per-speaker metric maps to display scalars.
package metrics

import "github.com/johnquangdev/convo-coach/internal/domain/entities"

// Sum adds every reported value
func Sum(m entities.SpeakerMetric) float64 {
	var total float64
	for _, e := range m.Entries() {
		total += e.Value
	}
	return total
}

// Mean averages over the speakers that reported a value. ok is false when
// none did.
func Mean(m entities.SpeakerMetric) (mean float64, ok bool) {
	if m.Len() == 0 {
		return 0, false
	}
	return Sum(m) / float64(m.Len()), true
}

// Max returns the speaker with the largest value; the first one wins ties
func Max(m entities.SpeakerMetric) (entities.Speaker, float64, bool) {
	entries := m.Entries()
	if len(entries) == 0 {
		return "", 0, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Value > best.Value {
			best = e
		}
	}
	return best.Speaker, best.Value, true
}

// Participant is one speaker's slice of the metrics
type Participant struct {
	Name            entities.Speaker `json:"name"`
	SpeakingShare   float64          `json:"speaking_share"`
	Interruptions   float64          `json:"interruptions"`
	QuestionsAsked  float64          `json:"questions_asked"`
	AvgWordsPerTurn float64          `json:"avg_words_per_turn"`
}

// Summary holds the display scalars of a report
type Summary struct {
	DurationTotal      float64      `json:"duration_total"`
	TotalInterruptions float64      `json:"total_interruptions"`
	TotalQuestions     float64      `json:"total_questions"`
	MeanWordsPerTurn   float64      `json:"mean_words_per_turn"`
	MeanSpeakingShare  float64      `json:"mean_speaking_share"`
	DominantSpeaker    string       `json:"dominant_speaker,omitempty"`
	DominantShare      float64      `json:"dominant_share"`
	SilenceCount       int          `json:"silence_count"`
	SilenceAvg         float64      `json:"silence_avg"`
	SilenceTotal       float64      `json:"silence_total"`
	MainUser           *Participant `json:"main_user,omitempty"`
}

// Summarize reduces detailed metrics. mainUser is the display label the
// backend keys the main user's metrics by; MainUser is nil when it reported
// no speaking time.
func Summarize(d entities.DetailedMetrics, mainUser entities.DisplayName) Summary {
	s := Summary{
		DurationTotal:      d.DurationTotal,
		TotalInterruptions: Sum(d.Interruptions),
		TotalQuestions:     Sum(d.EngagementStats.QuestionsAsked),
		SilenceCount:       d.SilenceStats.Count,
		SilenceAvg:         d.SilenceStats.AvgDuration,
		SilenceTotal:       d.SilenceStats.TotalDuration,
	}
	s.MeanWordsPerTurn, _ = Mean(d.EngagementStats.AvgWordsPerTurn)
	s.MeanSpeakingShare, _ = Mean(d.SpeakingDistribution)
	if who, share, ok := Max(d.SpeakingDistribution); ok {
		s.DominantSpeaker = string(who)
		s.DominantShare = share
	}

	key := entities.Speaker(mainUser)
	if share, ok := d.SpeakingDistribution.Get(key); ok {
		p := &Participant{Name: key, SpeakingShare: share}
		p.Interruptions, _ = d.Interruptions.Get(key)
		p.QuestionsAsked, _ = d.EngagementStats.QuestionsAsked.Get(key)
		p.AvgWordsPerTurn, _ = d.EngagementStats.AvgWordsPerTurn.Get(key)
		s.MainUser = p
	}

	return s
}
