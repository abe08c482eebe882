package scoring

import (
	"strings"
	"testing"

	"github.com/avikram/pathwise/internal/bank"
)

func choiceQuestion(id string, answer int) bank.Template {
	return bank.Template{
		ID:      id,
		Kind:    bank.KindChoice,
		Options: []string{"a", "b", "c", "d"},
		Answer:  answer,
	}
}

func TestScoreChoiceUsesPermutedAnswer(t *testing.T) {
	questions := []bank.Template{
		choiceQuestion("q1", 1),
		choiceQuestion("q2", 2),
	}
	// q1 correct option displayed at position 3, q2 at position 0.
	perms := map[string]bank.Permutation{
		"q1": {Order: []int{2, 0, 3, 1}, Answer: 3},
		"q2": {Order: []int{2, 1, 0, 3}, Answer: 0},
	}
	answers := map[string]Answer{
		"q1": ChoiceAnswer(3), // correct in display order
		"q2": ChoiceAnswer(2), // canonical index, wrong display position
	}

	card := Score(bank.ModeMCQ, questions, answers, perms)
	if card.Correctness == nil {
		t.Fatal("expected correctness for choice mode")
	}
	if *card.Correctness != 50 {
		t.Errorf("expected 50, got %d", *card.Correctness)
	}
	if card.Clarity != ClarityBaseline || card.Structure != StructureBaseline {
		t.Errorf("expected baselines %d/%d, got %d/%d",
			ClarityBaseline, StructureBaseline, card.Clarity, card.Structure)
	}
}

func TestScoreChoiceUnansweredCountsWrong(t *testing.T) {
	questions := []bank.Template{choiceQuestion("q1", 0), choiceQuestion("q2", 0)}
	perms := map[string]bank.Permutation{
		"q1": {Order: []int{0, 1, 2, 3}, Answer: 0},
		"q2": {Order: []int{0, 1, 2, 3}, Answer: 0},
	}
	answers := map[string]Answer{"q1": ChoiceAnswer(0)}

	card := Score(bank.ModeMCQ, questions, answers, perms)
	if *card.Correctness != 50 {
		t.Errorf("expected 50, got %d", *card.Correctness)
	}
}

func TestScoreFreeformAveragesAnsweredOnly(t *testing.T) {
	questions := []bank.Template{
		{ID: "q1", Kind: bank.KindText, Checklist: []string{"Isolation", "Shared memory"}},
		{ID: "q2", Kind: bank.KindText, Checklist: []string{"Ordering"}},
		{ID: "q3", Kind: bank.KindText},
	}
	long := strings.Repeat("isolation and shared state matter. ", 10) // > 300 chars
	answers := map[string]Answer{
		"q1": TextAnswer(long),
		// q2 and q3 unanswered
	}

	card := Score(bank.ModeQuiz, questions, answers, nil)
	if card.Correctness != nil {
		t.Errorf("expected nil correctness for freeform, got %d", *card.Correctness)
	}
	if card.Clarity != 90 {
		t.Errorf("expected clarity 90, got %d", card.Clarity)
	}
	// "isolation" and "shared" both hit: 100.
	if card.Structure != 100 {
		t.Errorf("expected structure 100, got %d", card.Structure)
	}
}

func TestScoreFreeformNothingAnswered(t *testing.T) {
	questions := []bank.Template{{ID: "q1", Kind: bank.KindCode, Rubric: []string{"Correctness"}}}
	card := Score(bank.ModeCoding, questions, nil, nil)
	if card.Correctness != nil || card.Clarity != 0 || card.Structure != 0 {
		t.Errorf("expected zero card, got %+v", card)
	}
}

func TestClarityOfText(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"short", 40},
		{strings.Repeat("a", 39), 40},
		{strings.Repeat("a", 40), 65},
		{strings.Repeat("a", 119), 65},
		{strings.Repeat("a", 120), 80},
		{strings.Repeat("a", 299), 80},
		{strings.Repeat("a", 300), 90},
	}
	for _, c := range cases {
		if got := ClarityOfText(c.text); got != c.want {
			t.Errorf("ClarityOfText(len %d) = %d, want %d", len(c.text), got, c.want)
		}
	}
}

func TestClarityMonotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 400; n += 10 {
		got := ClarityOfText(strings.Repeat("x", n))
		if got < prev {
			t.Fatalf("clarity dropped from %d to %d at length %d", prev, got, n)
		}
		prev = got
	}
}

func TestStructureOfKeywords(t *testing.T) {
	keys := []string{"Call stack", "Task vs microtask", "Ordering"}

	// One of three hits: raw 33, floored to 60.
	if got := StructureOfKeywords("the call order matters", keys); got != 60 {
		t.Errorf("expected floor 60, got %d", got)
	}
	// All first words present: 100.
	if got := StructureOfKeywords("call stack, task queue, ordering rules", keys); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	// Match is case-insensitive and only on the first word of a phrase.
	if got := StructureOfKeywords("TASK and ORDERING but no stack mention", keys); got != 67 {
		t.Errorf("expected 67, got %d", got)
	}
	// No keywords at all scores the floor.
	if got := StructureOfKeywords("anything", nil); got != 60 {
		t.Errorf("expected 60 without keywords, got %d", got)
	}
}
