// Package interview runs the timed session state machine: one question
// at a time, a per-question countdown, per-question submit and reveal,
// and a one-shot outcome once every question is submitted.
package interview

import (
	"math/rand"
	"time"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/plan"
	"github.com/avikram/pathwise/internal/report"
	"github.com/avikram/pathwise/internal/scoring"
)

// QuestionSeconds is the countdown budget for each question.
const QuestionSeconds = 60

// SessionState tracks the runtime state of one practice session.
type SessionState struct {
	// Type and Mode select the question track.
	Type bank.InterviewType
	Mode bank.Mode

	// Questions is the expanded set, fixed for the session's lifetime.
	Questions []bank.Template

	// Perms holds the per-question option shuffles (choice mode only).
	Perms map[string]bank.Permutation

	// Index is the current question position.
	Index int

	// Remaining is the countdown for the current question, in seconds.
	Remaining int

	// Answers maps question id to the recorded answer.
	Answers map[string]scoring.Answer

	// Submitted maps question id to whether it has been locked in.
	Submitted map[string]bool

	// Finished is true once every question is submitted.
	Finished bool

	// Persisted is set by the caller once the outcome has been handed
	// to the persistence gateway. It survives Restart so an attempt is
	// committed at most once.
	Persisted bool

	// completed guards the one-shot outcome.
	completed bool
}

// Outcome is the result of a finished session, built synchronously the
// moment the final question is submitted.
type Outcome struct {
	Type         bank.InterviewType        `json:"type"`
	Mode         bank.Mode                 `json:"mode"`
	FinishedAt   time.Time                 `json:"finishedAt"`
	ScorePercent *int                      `json:"scorePercent"`
	Answers      map[string]scoring.Answer `json:"-"`
	Scores       scoring.Scorecard         `json:"scores"`
	Report       report.Report             `json:"report"`
	Plan         plan.PracticePlan         `json:"plan"`
}

// NewSession expands the seed set for the given type and mode, computes
// the option shuffles, and returns a fresh session positioned at the
// first question with a full timer. rng drives the shuffle; callers pass
// a seeded source in tests.
func NewSession(typ bank.InterviewType, mode bank.Mode, rng *rand.Rand) *SessionState {
	questions := bank.Expand(bank.Questions(typ, mode), bank.SessionLength)
	return &SessionState{
		Type:      typ,
		Mode:      mode,
		Questions: questions,
		Perms:     bank.Permute(questions, rng),
		Remaining: QuestionSeconds,
		Answers:   make(map[string]scoring.Answer),
		Submitted: make(map[string]bool),
	}
}
