package room

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/interview"
	"github.com/avikram/pathwise/internal/ui/components"
	"github.com/avikram/pathwise/internal/ui/theme"
)

func (s *RoomScreen) View(width, height int) string {
	if s.width == 0 {
		s.width = width
		s.height = height
	}
	if s.showWarning {
		return s.renderWarning(width, height)
	}
	if s.showLeave {
		return renderLeaveConfirm(width)
	}
	if s.committing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Saving your attempt...")
	}
	return s.renderQuestion(width, height)
}

// renderWarning shows the pre-session rules. The countdown is held
// until the candidate starts.
func (s *RoomScreen) renderWarning(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Before you start")

	body := fmt.Sprintf(
		"This is a timed mock interview.\n\n"+
			"  • %d questions, %d seconds each\n"+
			"  • When the timer runs out, the question is submitted as-is\n"+
			"  • Use ← → to revisit questions you have not submitted\n"+
			"  • Leaving mid-session discards the attempt",
		len(s.state.Questions), interview.QuestionSeconds)

	button := components.NewButton("Begin Interview", true, nil)

	card := theme.Card.Render(
		title + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render(body) + "\n\n" +
			button.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderLeaveConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Leave the interview?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This attempt will be discarded. (y/n)"))
	return b.String()
}

func (s *RoomScreen) renderQuestion(width, height int) string {
	state := s.state
	q := interview.Current(state)
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Info line: position, submissions, countdown.
	timer := fmt.Sprintf("0:%02d", state.Remaining)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if state.Remaining <= 10 {
		timerStyle = timerStyle.Foreground(theme.Error).Bold(true)
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", state.Index+1, len(state.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d submitted  ", interview.SubmittedCount(state))) +
		timerStyle.Render("⏱ "+timer)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	// Countdown bar under the info line.
	bar := components.NewProgressBar("", float64(state.Remaining)/float64(interview.QuestionSeconds), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 80)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	// Answer surface.
	if q.Kind == bank.KindChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		if s.choice.Submitted {
			b.WriteString("\n")
			b.WriteString(renderSubmittedHint(width, state))
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.area.View()))
		if state.Submitted[q.ID] {
			b.WriteString("\n\n")
			b.WriteString(renderSubmittedHint(width, state))
		}
	}

	return b.String()
}

func renderSubmittedHint(width int, state *interview.SessionState) string {
	hint := "Submitted. Use ← → to move on."
	if !interview.CanAdvance(state) {
		hint = "Submitted."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(hint)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
