package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/notify"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/screens/home"
	"github.com/avikram/pathwise/internal/store"
	"github.com/avikram/pathwise/internal/ui/layout"
	"github.com/avikram/pathwise/internal/ui/theme"
)

// Deps carries the wired services into the TUI.
type Deps struct {
	Store   *store.Store
	Gateway *gateway.Gateway
	Coach   *coach.Service
	Bus     *notify.Bus
	Log     *zap.Logger

	// Start, when set, is pushed on top of the home screen at launch.
	// The practice command uses it to jump straight into a session.
	Start screen.Screen
}

// completionMsg surfaces a committed attempt inside the tea loop.
type completionMsg notify.CompletionEvent

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	deps     Deps
	events   chan notify.CompletionEvent
	stats    layout.HeaderStats
	toast    string
	startCmd tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Store, deps.Gateway, deps.Coach)

	m := AppModel{
		router: router.New(homeScreen),
		deps:   deps,
		events: make(chan notify.CompletionEvent, 8),
		stats:  loadStats(deps.Store),
	}

	if deps.Start != nil {
		m.startCmd = m.router.Push(deps.Start)
	}

	if deps.Bus != nil {
		events := m.events
		deps.Bus.Subscribe(func(ev notify.CompletionEvent) {
			select {
			case events <- ev:
			default:
			}
		})
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.startCmd != nil {
		return tea.Batch(m.waitForCompletion(), m.startCmd)
	}
	return m.waitForCompletion()
}

// waitForCompletion blocks on the bus channel and re-arms itself after
// every event.
func (m AppModel) waitForCompletion() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return completionMsg(<-events)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case completionMsg:
		m.toast = msg.Message
		m.stats = loadStats(m.deps.Store)
		return m, m.waitForCompletion()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens mid-flow (the interview room) intercept Esc to
			// confirm before discarding work.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				m.toast = ""
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if m.toast != "" {
		toast := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(m.toast)
		content = toast + "\n" + content
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// loadStats aggregates local history for the header bar.
func loadStats(st *store.Store) layout.HeaderStats {
	if st == nil {
		return layout.HeaderStats{}
	}

	summaries, err := st.Summaries(context.Background())
	if err != nil {
		return layout.HeaderStats{}
	}

	var stats layout.HeaderStats
	var scored, weighted int
	for _, s := range summaries {
		stats.Attempts += s.Count
		scored += s.Scored
		weighted += s.AverageScore * s.Scored
	}
	if scored > 0 {
		stats.AverageScore = weighted / scored
	}
	return stats
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
