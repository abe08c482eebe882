package modeselect

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/screens/room"
	"github.com/avikram/pathwise/internal/ui/components"
	"github.com/avikram/pathwise/internal/ui/theme"
)

// modeDetails describes each practice mode on the picker.
var modeDetails = map[bank.Mode]string{
	bank.ModeMCQ:    "multiple choice, scored",
	bank.ModeCoding: "write code, keyword graded",
	bank.ModeQuiz:   "short written answers",
}

// ModeSelectScreen picks the practice mode for a chosen interview type.
type ModeSelectScreen struct {
	typ  bank.InterviewType
	menu components.Menu
}

var _ screen.Screen = (*ModeSelectScreen)(nil)

// New creates a mode picker for the given interview type.
func New(typ bank.InterviewType, gw *gateway.Gateway, coachSvc *coach.Service) *ModeSelectScreen {
	var items []components.MenuItem
	for _, mode := range bank.Modes {
		mode := mode
		items = append(items, components.MenuItem{
			Label:  mode.Label(),
			Detail: modeDetails[mode],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: room.New(typ, mode, gw, coachSvc),
					}
				}
			},
		})
	}

	return &ModeSelectScreen{
		typ:  typ,
		menu: components.NewMenu(items),
	}
}

func (s *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ModeSelectScreen) Title() string {
	return s.typ.Label()
}

func (s *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModeSelectScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.typ.Label()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a practice mode"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
