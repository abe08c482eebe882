package interview

import (
	"math/rand"
	"testing"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/scoring"
)

func newTestSession(t *testing.T, typ bank.InterviewType, mode bank.Mode) *SessionState {
	t.Helper()
	return NewSession(typ, mode, rand.New(rand.NewSource(7)))
}

func TestNewSessionShape(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeMCQ)

	if len(state.Questions) != bank.SessionLength {
		t.Fatalf("expected %d questions, got %d", bank.SessionLength, len(state.Questions))
	}
	if state.Index != 0 || state.Remaining != QuestionSeconds {
		t.Errorf("expected fresh position, got index=%d remaining=%d", state.Index, state.Remaining)
	}
	if len(state.Perms) != bank.SessionLength {
		t.Errorf("expected a permutation per choice question, got %d", len(state.Perms))
	}

	freeform := newTestSession(t, bank.TypeTechnical, bank.ModeCoding)
	if len(freeform.Perms) != 0 {
		t.Errorf("expected no permutations in coding mode, got %d", len(freeform.Perms))
	}
}

func TestSetAnswerLockedAfterSubmit(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeQuiz)
	q := Current(state)

	SetAnswer(state, scoring.TextAnswer("first"))
	SetAnswer(state, scoring.TextAnswer("second"))
	if state.Answers[q.ID] != scoring.TextAnswer("second") {
		t.Errorf("expected answer replacement before submit, got %v", state.Answers[q.ID])
	}

	SubmitCurrent(state)
	SetAnswer(state, scoring.TextAnswer("third"))
	if state.Answers[q.ID] != scoring.TextAnswer("second") {
		t.Errorf("answer changed after submit: %v", state.Answers[q.ID])
	}
}

func TestSubmitAllYieldsOutcomeOnce(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeMCQ)

	var out *Outcome
	for i := 0; i < len(state.Questions); i++ {
		q := Current(state)
		SetAnswer(state, scoring.ChoiceAnswer(CorrectOption(state, q)))
		res := SubmitCurrent(state)
		if i < len(state.Questions)-1 {
			if res != nil {
				t.Fatalf("outcome before final submit at %d", i)
			}
			Advance(state)
		} else {
			out = res
		}
	}

	if !state.Finished {
		t.Fatal("session not finished after all submits")
	}
	if out == nil {
		t.Fatal("expected outcome on final submit")
	}
	if out.ScorePercent == nil || *out.ScorePercent != 100 {
		t.Errorf("expected 100%%, got %v", out.ScorePercent)
	}
	if out.Type != bank.TypeTechnical || out.Mode != bank.ModeMCQ {
		t.Errorf("outcome misidentified: %s/%s", out.Type, out.Mode)
	}

	// Re-submitting must not produce a second outcome.
	if res := SubmitCurrent(state); res != nil {
		t.Error("second outcome produced")
	}
}

func TestOutcomeFreeform(t *testing.T) {
	state := newTestSession(t, bank.TypeSystemDesign, bank.ModeQuiz)

	var out *Outcome
	for range state.Questions {
		SetAnswer(state, scoring.TextAnswer("Sharding spreads writes for scale-out, replication adds availability, both add complexity to operate."))
		if res := SubmitCurrent(state); res != nil {
			out = res
		}
		Advance(state)
	}

	if out == nil {
		t.Fatal("expected outcome")
	}
	if out.ScorePercent != nil {
		t.Errorf("freeform score percent should be nil, got %d", *out.ScorePercent)
	}
	if out.Scores.Clarity == 0 || out.Scores.Structure == 0 {
		t.Errorf("expected heuristic scores, got %+v", out.Scores)
	}
	if len(out.Plan.Entries) != len(out.Report.Weaknesses) {
		t.Errorf("plan entries %d != weaknesses %d", len(out.Plan.Entries), len(out.Report.Weaknesses))
	}
}

func TestNavigationResetsTimer(t *testing.T) {
	state := newTestSession(t, bank.TypeBehavioral, bank.ModeMCQ)

	Retreat(state) // clamped at first question
	if state.Index != 0 {
		t.Errorf("retreat moved past start: %d", state.Index)
	}

	state.Remaining = 10
	Advance(state)
	if state.Index != 1 || state.Remaining != QuestionSeconds {
		t.Errorf("advance: index=%d remaining=%d", state.Index, state.Remaining)
	}

	state.Remaining = 10
	Retreat(state)
	if state.Index != 0 || state.Remaining != QuestionSeconds {
		t.Errorf("retreat: index=%d remaining=%d", state.Index, state.Remaining)
	}
}

func TestTickCountdownAndExpiry(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeMCQ)
	first := Current(state)

	if out := Tick(state); out != nil || state.Remaining != QuestionSeconds-1 {
		t.Fatalf("tick: remaining=%d outcome=%v", state.Remaining, out)
	}

	state.Remaining = 1
	if out := Tick(state); out != nil {
		t.Fatalf("unexpected outcome on expiry: %v", out)
	}
	if !state.Submitted[first.ID] {
		t.Error("expired question not auto-submitted")
	}
	if state.Index != 1 {
		t.Errorf("expected advance to 1, got %d", state.Index)
	}
	if state.Remaining != QuestionSeconds {
		t.Errorf("timer not reset: %d", state.Remaining)
	}
}

func TestTickExpiryOnLastQuestionFinishes(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeMCQ)

	// Submit everything except the last question.
	for i := 0; i < len(state.Questions)-1; i++ {
		SubmitCurrent(state)
		Advance(state)
	}
	state.Remaining = 1

	out := Tick(state)
	if out == nil {
		t.Fatal("expected outcome from last-question expiry")
	}
	if !state.Finished {
		t.Error("session not finished")
	}
	if state.Index != len(state.Questions)-1 {
		t.Errorf("index moved past last question: %d", state.Index)
	}

	// Finished sessions ignore further ticks.
	state.Remaining = 1
	if res := Tick(state); res != nil {
		t.Error("tick after finish produced outcome")
	}
}

func TestRestartKeepsSetAndPersistedGuard(t *testing.T) {
	state := newTestSession(t, bank.TypeTechnical, bank.ModeMCQ)
	wantIDs := make([]string, len(state.Questions))
	for i, q := range state.Questions {
		wantIDs[i] = q.ID
	}
	wantPerm := state.Perms[wantIDs[0]]

	for range state.Questions {
		SetAnswer(state, scoring.ChoiceAnswer(0))
		SubmitCurrent(state)
		Advance(state)
	}
	state.Persisted = true

	Restart(state)

	if state.Index != 0 || state.Remaining != QuestionSeconds || state.Finished {
		t.Errorf("restart left stale position: %+v", state)
	}
	if len(state.Answers) != 0 || len(state.Submitted) != 0 {
		t.Errorf("restart kept answers/submissions")
	}
	for i, q := range state.Questions {
		if q.ID != wantIDs[i] {
			t.Fatalf("question set changed at %d", i)
		}
	}
	got := state.Perms[wantIDs[0]]
	if got.Answer != wantPerm.Answer {
		t.Error("permutations re-randomized on restart")
	}
	if !state.Persisted {
		t.Error("persisted guard cleared by restart")
	}

	// A replayed run still produces a fresh outcome.
	var out *Outcome
	for range state.Questions {
		if res := SubmitCurrent(state); res != nil {
			out = res
		}
		Advance(state)
	}
	if out == nil {
		t.Error("replay produced no outcome")
	}
}
