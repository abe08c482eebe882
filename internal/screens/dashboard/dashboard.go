package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/report"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/store"
	"github.com/avikram/pathwise/internal/ui/layout"
	"github.com/avikram/pathwise/internal/ui/theme"
)

// maxRecent caps the attempt list shown below the summaries.
const maxRecent = 20

type dashboardLoadedMsg struct {
	Summaries []store.TypeSummary
	Attempts  []store.Attempt
	Err       error
}

// DashboardScreen shows per-type aggregates and recent local attempts.
type DashboardScreen struct {
	store     *store.Store
	summaries []store.TypeSummary
	attempts  []store.Attempt
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(st *store.Store) *DashboardScreen {
	return &DashboardScreen{
		store:    st,
		expanded: make(map[int]bool),
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		summaries, err := s.store.Summaries(ctx)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}

		attempts, err := s.store.ListAttempts(ctx)
		if err != nil {
			return dashboardLoadedMsg{Summaries: summaries, Err: err}
		}
		if len(attempts) > maxRecent {
			attempts = attempts[:maxRecent]
		}

		return dashboardLoadedMsg{Summaries: summaries, Attempts: attempts}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.summaries = msg.Summaries
		s.attempts = msg.Attempts
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Per-type summaries.
	for _, sum := range s.summaries {
		avgStr := "—"
		if sum.Scored > 0 {
			avgStr = fmt.Sprintf("%d%% avg", sum.AverageScore)
		}
		lastStr := ""
		if !sum.Last.IsZero() {
			lastStr = "  last " + sum.Last.Format("Jan 02")
		}
		line := fmt.Sprintf("  %-24s %d attempts   %s%s",
			sum.Type.Label(), sum.Count, avgStr, lastStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line)))
		b.WriteString("\n")
	}

	if len(s.summaries) == 0 && len(s.attempts) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Start an interview!"))
		return b.String()
	}

	// Divider before the attempt list.
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent attempts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, att := range s.attempts {
		dateStr := att.Timestamp.Format("Jan 02, 15:04")
		scoreStr := "freeform"
		if att.ScorePercent != nil {
			scoreStr = fmt.Sprintf("%d%%", *att.ScorePercent)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s · %s  %s",
			prefix, dateStr, att.Type.Label(), att.Mode.Label(), scoreStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderAttemptDetail(att, width))
		}
	}

	return b.String()
}

// renderAttemptDetail decodes the stored report and shows its
// classification lines under the attempt.
func renderAttemptDetail(att store.Attempt, width int) string {
	var rep report.Report
	if err := json.Unmarshal(att.Report, &rep); err != nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    report unavailable")) + "\n"
	}

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	if len(rep.Strengths) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render("    strengths: "+strings.Join(rep.Strengths, ", "))))
		b.WriteString("\n")
	}
	if len(rep.Weaknesses) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Render("    needs work: "+strings.Join(rep.Weaknesses, ", "))))
		b.WriteString("\n")
	}
	if len(rep.Strengths) == 0 && len(rep.Weaknesses) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			dim.Italic(true).Render("    no classification recorded")))
		b.WriteString("\n")
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
