package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/ui/theme"
)

// ChoiceList is a multiple-choice selector. Options are shown in
// display order; after submission the correct option and the chosen
// one are highlighted and the explanation (if any) is revealed.
type ChoiceList struct {
	Options      []string
	CorrectIndex int
	Explanation  string
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates a choice list positioned at the first option.
func NewChoiceList(options []string, correctIndex int, explanation string) ChoiceList {
	return ChoiceList{
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Submission is driven by the
// owning screen via Submit, not by this component.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Submit locks in the current selection.
func (c *ChoiceList) Submit() {
	if c.Submitted {
		return
	}
	c.Submitted = true
	c.ChosenIndex = c.Selected
}

// IsCorrect returns true if the submitted choice matches the correct
// display position.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}

// View renders the options, with the reveal state after submission.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Submitted && i == c.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.Submitted && i == c.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if c.Submitted && c.Explanation != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(c.Explanation) + "\n"
	}

	return s
}
