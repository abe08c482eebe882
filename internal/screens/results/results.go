package results

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/avikram/pathwise/internal/coach"
	"github.com/avikram/pathwise/internal/gateway"
	"github.com/avikram/pathwise/internal/interview"
	"github.com/avikram/pathwise/internal/router"
	"github.com/avikram/pathwise/internal/scoring"
	"github.com/avikram/pathwise/internal/screen"
	"github.com/avikram/pathwise/internal/ui/layout"
)

// coachPollInterval is how often we check for a finished review.
const coachPollInterval = 300 * time.Millisecond

// coachPollMsg drives polling for the async coach review.
type coachPollMsg struct{}

// RestartFunc rebuilds the interview screen for a replayed session.
type RestartFunc func(*interview.SessionState) screen.Screen

// ResultsScreen shows the report, practice plan and coach review for a
// finished session.
type ResultsScreen struct {
	state    *interview.SessionState
	outcome  *interview.Outcome
	result   gateway.Result
	coachSvc *coach.Service
	restart  RestartFunc

	review        *coach.Review
	coachPending  bool
	coachDeadline time.Time
	scroll        int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. state is kept so a restart replays
// the same question set.
func New(state *interview.SessionState, outcome *interview.Outcome, result gateway.Result, coachSvc *coach.Service, restart RestartFunc) *ResultsScreen {
	return &ResultsScreen{
		state:    state,
		outcome:  outcome,
		result:   result,
		coachSvc: coachSvc,
		restart:  restart,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.coachSvc == nil || s.outcome == nil {
		return nil
	}
	s.coachPending = true
	s.coachDeadline = time.Now().Add(45 * time.Second)
	s.coachSvc.RequestReview(context.Background(), s.reviewInput())
	return pollCmd()
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coachPollMsg:
		if !s.coachPending {
			return s, nil
		}
		if review, ok := s.coachSvc.ConsumeReview(); ok {
			s.review = review
			s.coachPending = false
			return s, nil
		}
		// Failed generations clear the pending slot without a review;
		// the deadline stops us from polling forever.
		if time.Now().After(s.coachDeadline) {
			s.coachPending = false
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			interview.Restart(s.state)
			restarted := s.restart(s.state)
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: restarted}
			}
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
			return s, nil
		case "down", "j":
			s.scroll++
			return s, nil
		}
	}
	return s, nil
}

// reviewInput assembles the coach's view of the finished session:
// freeform questions with their answers and per-answer scores, plus
// the report's weak areas.
func (s *ResultsScreen) reviewInput() coach.ReviewInput {
	in := coach.ReviewInput{
		InterviewType: s.outcome.Type.Label(),
		Mode:          s.outcome.Mode.Label(),
		ScorePercent:  s.outcome.ScorePercent,
		Weaknesses:    s.outcome.Report.Weaknesses,
	}

	for _, q := range s.state.Questions {
		ans, ok := s.outcome.Answers[q.ID].(scoring.TextAnswer)
		if !ok {
			continue
		}
		text := string(ans)
		in.Exchanges = append(in.Exchanges, coach.Exchange{
			Prompt:    q.Prompt,
			Answer:    text,
			Clarity:   scoring.ClarityOfText(text),
			Structure: scoring.StructureOfKeywords(text, q.Keywords()),
		})
	}

	return in
}

func pollCmd() tea.Cmd {
	return tea.Tick(coachPollInterval, func(time.Time) tea.Msg {
		return coachPollMsg{}
	})
}
