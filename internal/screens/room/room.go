package room

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/interview"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/screens/results"
	"github.com/avikram/pathwise/internal/scoring"
	"github.com/avikram/pathwise/internal/ui/components"
	"github.com/avikram/pathwise/internal/ui/layout"
)

// commitTimeout bounds the remote save before the gateway falls back
// to the local store.
const commitTimeout = 15 * time.Second

// RoomScreen runs one timed interview session.
type RoomScreen struct {
	state    *interview.SessionState
	gateway  *gateway.Gateway
	coachSvc *coach.Service

	choice components.ChoiceList
	area   components.AnswerArea

	// showWarning gates the session start; the countdown does not run
	// until the candidate acknowledges the rules.
	showWarning bool
	showLeave   bool
	committing  bool

	width  int
	height int
}

var _ screen.Screen = (*RoomScreen)(nil)
var _ screen.KeyHintProvider = (*RoomScreen)(nil)
var _ screen.EscHandler = (*RoomScreen)(nil)

// New starts a fresh session for the given type and mode.
func New(typ bank.InterviewType, mode bank.Mode, gw *gateway.Gateway, coachSvc *coach.Service) *RoomScreen {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return resume(interview.NewSession(typ, mode, rng), gw, coachSvc)
}

// resume wraps an existing session, used for fresh sessions and for
// restarts from the results screen.
func resume(state *interview.SessionState, gw *gateway.Gateway, coachSvc *coach.Service) *RoomScreen {
	s := &RoomScreen{
		state:       state,
		gateway:     gw,
		coachSvc:    coachSvc,
		showWarning: true,
	}
	s.syncInputs()
	return s
}

func (s *RoomScreen) Init() tea.Cmd {
	return nil
}

func (s *RoomScreen) Title() string {
	return s.state.Type.Label() + " · " + s.state.Mode.Label()
}

func (s *RoomScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showWarning:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case s.showLeave:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	case s.committing:
		return []layout.KeyHint{
			{Key: "", Description: "Saving attempt..."},
		}
	case s.currentIsChoice():
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

// HandleEsc intercepts the global back key: mid-session it asks for
// confirmation instead of silently discarding the attempt.
func (s *RoomScreen) HandleEsc() tea.Cmd {
	if s.showWarning || s.committing {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.showLeave {
		s.showLeave = true
	}
	return nil
}

func (s *RoomScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.area.SetSize(answerAreaWidth(s.width), answerAreaHeight(s.height))
		return s, nil

	case timerTickMsg:
		return s.handleTick()

	case commitDoneMsg:
		return s.handleCommitDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputActive() && !s.currentIsChoice() {
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *RoomScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.showWarning || s.committing || s.state.Finished {
		return s, nil
	}

	// Keep the freeform draft current so an expiring timer submits
	// what was actually typed.
	s.recordDraft()

	beforeIdx := s.state.Index
	var beforeSubmitted bool
	if q := interview.Current(s.state); q != nil {
		beforeSubmitted = s.state.Submitted[q.ID]
	}

	out := interview.Tick(s.state)

	// Rebuild inputs when the expiry moved or auto-submitted us.
	if s.state.Index != beforeIdx {
		s.syncInputs()
	} else if q := interview.Current(s.state); q != nil && s.state.Submitted[q.ID] != beforeSubmitted {
		s.syncInputs()
	}

	if out != nil {
		return s, s.commit(out)
	}
	if s.state.Finished {
		return s, nil
	}
	return s, tickCmd()
}

func (s *RoomScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showWarning {
		switch key {
		case "enter":
			s.showWarning = false
			return s, tickCmd()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.showLeave {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showLeave = false
		}
		return s, nil
	}

	if s.committing {
		return s, nil
	}

	switch key {
	case "left":
		s.recordDraft()
		interview.Retreat(s.state)
		s.syncInputs()
		return s, nil
	case "right":
		s.recordDraft()
		interview.Advance(s.state)
		s.syncInputs()
		return s, nil
	}

	if s.currentIsChoice() {
		switch key {
		case "enter":
			return s.submitChoice()
		default:
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			return s, cmd
		}
	}

	if key == "ctrl+s" {
		return s.submitFreeform()
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.area, cmd = s.area.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *RoomScreen) submitChoice() (screen.Screen, tea.Cmd) {
	q := interview.Current(s.state)
	if q == nil || s.state.Submitted[q.ID] {
		return s, nil
	}

	interview.SetAnswer(s.state, scoring.ChoiceAnswer(s.choice.Selected))
	s.choice.Submit()

	out := interview.SubmitCurrent(s.state)
	if out != nil {
		return s, s.commit(out)
	}
	return s, nil
}

func (s *RoomScreen) submitFreeform() (screen.Screen, tea.Cmd) {
	q := interview.Current(s.state)
	if q == nil || s.state.Submitted[q.ID] {
		return s, nil
	}

	interview.SetAnswer(s.state, scoring.TextAnswer(s.area.Value()))
	s.area.Blur()

	out := interview.SubmitCurrent(s.state)
	if out != nil {
		return s, s.commit(out)
	}
	return s, nil
}

// commit hands the one-shot outcome to the gateway asynchronously. The
// Persisted flag is set immediately so a restarted session never
// double-commits.
func (s *RoomScreen) commit(out *interview.Outcome) tea.Cmd {
	s.committing = true

	if s.state.Persisted {
		return func() tea.Msg {
			return commitDoneMsg{Outcome: out}
		}
	}
	s.state.Persisted = true

	gw := s.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()
		res := gw.Commit(ctx, out)
		return commitDoneMsg{Outcome: out, Result: res}
	}
}

func (s *RoomScreen) handleCommitDone(msg commitDoneMsg) (screen.Screen, tea.Cmd) {
	state := s.state
	gw := s.gateway
	coachSvc := s.coachSvc

	restart := func(st *interview.SessionState) screen.Screen {
		return resume(st, gw, coachSvc)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(state, msg.Outcome, msg.Result, coachSvc, restart),
		}
	}
}

// recordDraft saves the freeform text currently in the editor without
// submitting it.
func (s *RoomScreen) recordDraft() {
	q := interview.Current(s.state)
	if q == nil || q.Kind == bank.KindChoice || s.state.Submitted[q.ID] {
		return
	}
	interview.SetAnswer(s.state, scoring.TextAnswer(s.area.Value()))
}

// syncInputs rebuilds the input components for the current question,
// restoring any previously recorded answer.
func (s *RoomScreen) syncInputs() {
	q := interview.Current(s.state)
	if q == nil {
		return
	}

	if q.Kind == bank.KindChoice {
		c := components.NewChoiceList(
			interview.Options(s.state, q),
			interview.CorrectOption(s.state, q),
			q.Explanation,
		)
		if ans, ok := s.state.Answers[q.ID].(scoring.ChoiceAnswer); ok {
			c.Selected = int(ans)
			if s.state.Submitted[q.ID] {
				c.Submitted = true
				c.ChosenIndex = int(ans)
			}
		} else if s.state.Submitted[q.ID] {
			// Timer expired with no selection.
			c.Submitted = true
		}
		s.choice = c
		return
	}

	initial := q.Starter
	if ans, ok := s.state.Answers[q.ID].(scoring.TextAnswer); ok {
		initial = string(ans)
	}
	s.area = components.NewAnswerArea(q.Placeholder, initial, answerAreaWidth(s.width), answerAreaHeight(s.height))
	if s.state.Submitted[q.ID] {
		s.area.Blur()
	}
}

func (s *RoomScreen) currentIsChoice() bool {
	q := interview.Current(s.state)
	return q != nil && q.Kind == bank.KindChoice
}

// inputActive reports whether keystrokes should flow into the answer
// editor.
func (s *RoomScreen) inputActive() bool {
	if s.showWarning || s.showLeave || s.committing || s.state.Finished {
		return false
	}
	q := interview.Current(s.state)
	return q != nil && !s.state.Submitted[q.ID]
}

func answerAreaWidth(width int) int {
	w := width - 12
	if w < 20 {
		w = 20
	}
	if w > 90 {
		w = 90
	}
	return w
}

func answerAreaHeight(height int) int {
	h := height - 14
	if h < 4 {
		h = 4
	}
	if h > 14 {
		h = 14
	}
	return h
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
