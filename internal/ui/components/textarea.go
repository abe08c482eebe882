package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerArea wraps bubbles/textarea for freeform interview answers.
type AnswerArea struct {
	Model textarea.Model
}

// NewAnswerArea creates a multi-line answer input. An initial value
// pre-fills the area, used for coding starters and revisited answers.
func NewAnswerArea(placeholder, initial string, width, height int) AnswerArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetValue(initial)
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerArea{Model: ta}
}

// Init returns the initial command.
func (a AnswerArea) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerArea) Update(msg tea.Msg) (AnswerArea, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer area.
func (a AnswerArea) View() string {
	return a.Model.View()
}

// Value returns the current answer text.
func (a AnswerArea) Value() string {
	return a.Model.Value()
}

// SetSize resizes the underlying textarea.
func (a *AnswerArea) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}

// Blur removes focus, used once a question is submitted.
func (a *AnswerArea) Blur() {
	a.Model.Blur()
}
