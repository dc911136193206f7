// Package terminal renders reports and drives the interactive flow on a TTY.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/johnquangdev/convo-coach/internal/adapter/dto/report"
	"github.com/johnquangdev/convo-coach/internal/usecase/timeline"
)

const rowWidth = 56

// Renderer writes a report as styled text
type Renderer struct {
	output io.Writer
}

// NewRenderer creates a renderer writing to output
func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport writes the whole report
func (r *Renderer) RenderReport(resp *report.ReportResponse) {
	if resp == nil {
		return
	}
	r.renderHeader(resp)
	r.renderSummary(resp)
	r.renderAnalysis(resp)
	r.renderTimeline(resp.Timeline)
	r.RenderActions(resp.Actions)
}

func (r *Renderer) renderHeader(resp *report.ReportResponse) {
	fmt.Fprintln(r.output, divider)
	fmt.Fprintf(r.output, "%s %s  %s\n",
		titleStyle.Render("Awkwardness score"),
		bandStyle(resp.Band).Render(fmt.Sprintf("%.0f/100", resp.Score)),
		valueStyle.Render(resp.Verdict),
	)
	fmt.Fprintf(r.output, "%s %s\n", labelStyle.Render("Coaching:"), valueStyle.Render(resp.MainUser))
	fmt.Fprintln(r.output, divider)
}

func (r *Renderer) renderSummary(resp *report.ReportResponse) {
	s := resp.Summary
	fmt.Fprintln(r.output, titleStyle.Render("Metrics"))
	r.field("Duration", fmt.Sprintf("%.1fs", s.DurationTotal))
	if s.MainUser != nil {
		r.field("Your talk share", fmt.Sprintf("%.1f%%", s.MainUser.SpeakingShare))
		r.field("Your interruptions", fmt.Sprintf("%.0f", s.MainUser.Interruptions))
		r.field("Your questions", fmt.Sprintf("%.0f", s.MainUser.QuestionsAsked))
	}
	if s.DominantSpeaker != "" {
		r.field("Most talkative", fmt.Sprintf("%s (%.1f%%)", s.DominantSpeaker, s.DominantShare))
	}
	r.field("Interruptions", fmt.Sprintf("%.0f", s.TotalInterruptions))
	r.field("Questions asked", fmt.Sprintf("%.0f", s.TotalQuestions))
	r.field("Words per turn", fmt.Sprintf("%.1f", s.MeanWordsPerTurn))
	r.field("Silences", fmt.Sprintf("%d (avg %.1fs, total %.1fs)", s.SilenceCount, s.SilenceAvg, s.SilenceTotal))
	fmt.Fprintln(r.output)
}

func (r *Renderer) renderAnalysis(resp *report.ReportResponse) {
	a := resp.Analysis
	fmt.Fprintln(r.output, titleStyle.Render("Analysis"))
	for _, p := range []struct{ name, text string }{
		{"Dominance", a.Dominance},
		{"Interruptions", a.Interruptions},
		{"Silence", a.Silence},
		{"Quality", a.Quality},
	} {
		if p.text == "" {
			continue
		}
		r.field(p.name, p.text)
	}
	fmt.Fprintln(r.output)
}

func (r *Renderer) renderTimeline(rows []timeline.Row) {
	fmt.Fprintln(r.output, titleStyle.Render("Timeline"))
	for _, row := range rows {
		fmt.Fprintln(r.output, r.row(row))
	}
	fmt.Fprintln(r.output)
}

func (r *Renderer) row(row timeline.Row) string {
	stamp := dimStyle.Render(fmt.Sprintf("%6.1fs", row.Start))
	switch row.Kind {
	case timeline.KindPain:
		text := fmt.Sprintf("⚠ %s: %s (%.0fs)", row.Label, row.Desc, row.Duration)
		if row.Severity > 0 {
			text += fmt.Sprintf(" severity %.0f%%", row.Severity*100)
		}
		return stamp + " " + painStyle.Render(text)
	default:
		text := fmt.Sprintf("%s: %s", row.Speaker, row.Text)
		if row.Side == timeline.SideLeft {
			return stamp + " " + leftStyle.Width(rowWidth).Render(text)
		}
		return stamp + " " + rightStyle.Width(rowWidth).Align(lipgloss.Right).Render(text)
	}
}

// RenderActions writes the action plan. Replayable entries show their index.
func (r *Renderer) RenderActions(actions []report.ActionResponse) {
	fmt.Fprintln(r.output, titleStyle.Render("Action plan"))
	for _, a := range actions {
		marker := "   "
		if a.Replayable {
			marker = fmt.Sprintf("%2d)", a.Index+1)
		}
		fmt.Fprintf(r.output, "%s %s\n", actionStyle.Render(marker), valueStyle.Render(a.DisplayText))
		if a.Context != "" {
			fmt.Fprintf(r.output, "    %s\n", dimStyle.Render(a.Context))
		}
		if a.Replayable && a.ReplayText != "" {
			fmt.Fprintf(r.output, "    %s %s\n", labelStyle.Render("Say instead:"), valueStyle.Render(strings.TrimSpace(a.ReplayText)))
		}
	}
}

func (r *Renderer) field(label, value string) {
	fmt.Fprintf(r.output, "  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}
