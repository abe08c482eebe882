package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/screens/dashboard"
	"github.com/avikram/pathwise/internal/screens/modeselect"
	"github.com/avikram/pathwise/internal/store"
	"github.com/avikram/pathwise/internal/ui/components"
	"github.com/avikram/pathwise/internal/ui/theme"
)

// HomeScreen is the entry screen: pick an interview track or open the
// dashboard.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The store may be nil when the local
// database could not be opened; the dashboard entry is disabled then.
func New(st *store.Store, gw *gateway.Gateway, coachSvc *coach.Service) *HomeScreen {
	details := typeDetails(st)

	var items []components.MenuItem
	for _, typ := range bank.Types {
		typ := typ
		items = append(items, components.MenuItem{
			Label:  typ.Label(),
			Detail: details[typ],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: modeselect.New(typ, gw, coachSvc),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label:    "Dashboard",
			Disabled: st == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: dashboard.New(st)}
				}
			},
		},
		components.MenuItem{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Pathwise"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Timed mock interviews in your terminal"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// typeDetails builds the per-track attempt summary shown next to each
// menu entry.
func typeDetails(st *store.Store) map[bank.InterviewType]string {
	details := make(map[bank.InterviewType]string)
	if st == nil {
		return details
	}

	summaries, err := st.Summaries(context.Background())
	if err != nil {
		return details
	}
	for _, sum := range summaries {
		if sum.Count == 0 {
			continue
		}
		d := fmt.Sprintf("%d attempts", sum.Count)
		if sum.Scored > 0 {
			d += fmt.Sprintf(", %d%% avg", sum.AverageScore)
		}
		details[sum.Type] = d
	}
	return details
}
