package interview

import (
	"time"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/plan"
	"github.com/avikram/pathwise/internal/report"
	"github.com/avikram/pathwise/internal/scoring"
)

// Current returns the active question, nil for an empty session.
func Current(state *SessionState) *bank.Template {
	if state.Index < 0 || state.Index >= len(state.Questions) {
		return nil
	}
	return &state.Questions[state.Index]
}

// Options returns a question's options in display order, applying the
// session's permutation when one exists.
func Options(state *SessionState, q *bank.Template) []string {
	p, ok := state.Perms[q.ID]
	if !ok {
		return q.Options
	}
	out := make([]string, len(p.Order))
	for pos, canonical := range p.Order {
		out[pos] = q.Options[canonical]
	}
	return out
}

// CorrectOption returns the display position of a choice question's
// correct answer.
func CorrectOption(state *SessionState, q *bank.Template) int {
	if p, ok := state.Perms[q.ID]; ok {
		return p.Answer
	}
	return q.Answer
}

// SetAnswer records or replaces the answer for the current question.
// Ignored once that question is submitted or the session has finished.
func SetAnswer(state *SessionState, ans scoring.Answer) {
	if state.Finished {
		return
	}
	q := Current(state)
	if q == nil || state.Submitted[q.ID] {
		return
	}
	state.Answers[q.ID] = ans
}

// SubmitCurrent locks in the current question. Submitting an already
// submitted question is a no-op. When this submit completes the set, the
// session finishes and the one-shot Outcome is returned; every later
// call returns nil.
func SubmitCurrent(state *SessionState) *Outcome {
	q := Current(state)
	if q == nil {
		return nil
	}
	state.Submitted[q.ID] = true
	return finishIfDone(state)
}

// CanAdvance reports whether a later question exists.
func CanAdvance(state *SessionState) bool {
	return state.Index < len(state.Questions)-1
}

// CanRetreat reports whether an earlier question exists.
func CanRetreat(state *SessionState) bool {
	return state.Index > 0
}

// Advance moves to the next question and resets the timer. No-op at the
// last question or after finish.
func Advance(state *SessionState) {
	if state.Finished || !CanAdvance(state) {
		return
	}
	state.Index++
	state.Remaining = QuestionSeconds
}

// Retreat moves to the previous question and resets the timer. No-op at
// the first question or after finish.
func Retreat(state *SessionState) {
	if state.Finished || !CanRetreat(state) {
		return
	}
	state.Index--
	state.Remaining = QuestionSeconds
}

// Tick advances the countdown by one second. When the budget runs out
// the current question is auto-submitted if still open (which may finish
// the session and yield the outcome), the session moves to the next
// question unless already at the last, and the timer resets. Callers
// stop ticking while the pre-session warning is up and once finished.
func Tick(state *SessionState) *Outcome {
	if state.Finished || len(state.Questions) == 0 {
		return nil
	}
	if state.Remaining > 1 {
		state.Remaining--
		return nil
	}

	var out *Outcome
	if q := Current(state); q != nil && !state.Submitted[q.ID] {
		state.Submitted[q.ID] = true
		out = finishIfDone(state)
	}
	if CanAdvance(state) {
		state.Index++
	}
	state.Remaining = QuestionSeconds
	return out
}

// Restart replays the session from the first question: answers and
// submissions are cleared and the timer refills, but the question set
// and option shuffles are kept. Persisted deliberately survives so a
// replayed attempt is not committed twice.
func Restart(state *SessionState) {
	state.Index = 0
	state.Remaining = QuestionSeconds
	state.Answers = make(map[string]scoring.Answer)
	state.Submitted = make(map[string]bool)
	state.Finished = false
	state.completed = false
}

// SubmittedCount returns how many questions are locked in.
func SubmittedCount(state *SessionState) int {
	n := 0
	for _, q := range state.Questions {
		if state.Submitted[q.ID] {
			n++
		}
	}
	return n
}

func finishIfDone(state *SessionState) *Outcome {
	if len(state.Questions) == 0 {
		return nil
	}
	for _, q := range state.Questions {
		if !state.Submitted[q.ID] {
			return nil
		}
	}
	state.Finished = true
	if state.completed {
		return nil
	}
	state.completed = true
	return buildOutcome(state)
}

func buildOutcome(state *SessionState) *Outcome {
	now := time.Now()
	card := scoring.Score(state.Mode, state.Questions, state.Answers, state.Perms)
	rep := report.Build(state.Type, state.Mode, card)

	answers := make(map[string]scoring.Answer, len(state.Answers))
	for id, a := range state.Answers {
		answers[id] = a
	}

	return &Outcome{
		Type:         state.Type,
		Mode:         state.Mode,
		FinishedAt:   now,
		ScorePercent: card.Correctness,
		Answers:      answers,
		Scores:       card,
		Report:       rep,
		Plan:         plan.Build(rep, now),
	}
}
