package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/ui/components"
	"github.com/avikram/pathwise/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	if s.outcome == nil {
		return ""
	}

	lines := strings.Split(s.renderContent(width), "\n")

	// Simple scroll window over the rendered content.
	if s.scroll > len(lines)-height {
		s.scroll = len(lines) - height
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

func (s *ResultsScreen) renderContent(width int) string {
	out := s.outcome
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", minInt(width-8, 60)))
	section := func(name string) {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(name))
		center(divider)
		b.WriteString("\n")
	}

	// Headline.
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Interview complete!"))
	center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s", out.Type.Label(), out.Mode.Label())))
	b.WriteString("\n")

	// Save confirmation from the gateway.
	msgStyle := lipgloss.NewStyle().Foreground(theme.Success)
	if !s.result.Synced {
		msgStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	center(msgStyle.Render(s.result.Message))
	if s.result.Stats != nil {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d interviews on record · %.0f%% average",
				s.result.Stats.InterviewsCompleted, s.result.Stats.AverageScore)))
	}

	// Scores.
	section("Scores")
	barWidth := minInt(width-20, 50)
	if out.ScorePercent != nil {
		bar := components.NewProgressBar("Correctness", float64(*out.ScorePercent)/100, true, barWidth)
		center(bar.View())
	}
	center(components.NewProgressBar("Clarity    ", float64(out.Scores.Clarity)/100, true, barWidth).View())
	center(components.NewProgressBar("Structure  ", float64(out.Scores.Structure)/100, true, barWidth).View())

	// Report.
	section("Report")
	if len(out.Report.Strengths) > 0 {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(
			"Strengths: " + strings.Join(out.Report.Strengths, ", ")))
	}
	if len(out.Report.Weaknesses) > 0 {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(
			"Needs work: " + strings.Join(out.Report.Weaknesses, ", ")))
	}
	if len(out.Report.Strengths) == 0 && len(out.Report.Weaknesses) == 0 {
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Nothing measured this session."))
	}
	for _, r := range out.Report.Resources {
		center(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("  %s — %s", r.Title, lipgloss.NewStyle().Foreground(theme.Secondary).Render(r.URL))))
	}

	// Practice plan.
	if len(out.Plan.Entries) > 0 {
		section("Practice plan")
		for _, e := range out.Plan.Entries {
			var days []string
			for _, d := range e.Due {
				days = append(days, d.Format("Jan 02"))
			}
			center(lipgloss.NewStyle().Foreground(theme.Text).Render(
				fmt.Sprintf("  %s — review on %s", e.Topic, strings.Join(days, ", "))))
		}
	}

	// Coach review.
	if s.coachSvc != nil {
		section("Coach")
		switch {
		case s.review != nil:
			wrap := lipgloss.NewStyle().Width(minInt(width-12, 70)).Foreground(theme.Text)
			center(wrap.Render(s.review.Summary))
			b.WriteString("\n")
			for _, tip := range s.review.Tips {
				center(wrap.Foreground(theme.Secondary).Render("  • " + tip))
			}
		case s.coachPending:
			center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Your coach is reviewing the session..."))
		default:
			center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Coach review unavailable."))
		}
	}

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
