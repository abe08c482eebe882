package bank

import (
	"math/rand"
	"strings"
	"testing"
)

func TestQuestionsKnownTrack(t *testing.T) {
	qs := Questions(TypeTechnical, ModeMCQ)
	if len(qs) != 2 {
		t.Fatalf("expected 2 technical mcq seeds, got %d", len(qs))
	}
	if qs[0].ID != "t-m-1" || qs[0].Kind != KindChoice {
		t.Errorf("unexpected first seed: %+v", qs[0])
	}
}

func TestQuestionsUnknownTypeFallsBackToTechnical(t *testing.T) {
	qs := Questions(InterviewType("astrology"), ModeQuiz)
	if len(qs) == 0 {
		t.Fatal("expected fallback to technical track")
	}
	if qs[0].ID != "t-q-1" {
		t.Errorf("expected technical quiz seed, got %s", qs[0].ID)
	}
}

func TestQuestionsUnknownMode(t *testing.T) {
	if qs := Questions(TypeTechnical, Mode("oral")); len(qs) != 0 {
		t.Errorf("expected no questions for unknown mode, got %d", len(qs))
	}
}

func TestExpandPadsToTarget(t *testing.T) {
	seeds := Questions(TypeBehavioral, ModeQuiz) // single seed
	out := Expand(seeds, SessionLength)
	if len(out) != SessionLength {
		t.Fatalf("expected %d questions, got %d", SessionLength, len(out))
	}

	// Seeds keep their identity.
	if out[0].ID != "b-q-1" || strings.Contains(out[0].Prompt, "(v") {
		t.Errorf("seed question was modified: %+v", out[0])
	}

	// First clone lands at position 1 with copy index 2.
	if out[1].ID != "b-q-1-x2" {
		t.Errorf("expected clone id b-q-1-x2, got %s", out[1].ID)
	}
	if !strings.HasSuffix(out[1].Prompt, "(v2)") {
		t.Errorf("expected (v2) prompt suffix, got %q", out[1].Prompt)
	}

	// All ids are unique.
	seen := make(map[string]bool)
	for _, q := range out {
		if seen[q.ID] {
			t.Errorf("duplicate id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestExpandChoiceVariantSuffix(t *testing.T) {
	seeds := Questions(TypeTechnical, ModeMCQ)
	out := Expand(seeds, 4)
	if !strings.HasSuffix(out[2].Prompt, "(variant 3)") {
		t.Errorf("expected (variant 3) suffix, got %q", out[2].Prompt)
	}
	if out[2].ID != "t-m-1-x3" {
		t.Errorf("expected id t-m-1-x3, got %s", out[2].ID)
	}
	// Clones keep the canonical answer and options.
	if out[2].Answer != out[0].Answer {
		t.Errorf("clone answer drifted: %d vs %d", out[2].Answer, out[0].Answer)
	}
}

func TestExpandEmptyAndOversized(t *testing.T) {
	if out := Expand(nil, SessionLength); out != nil {
		t.Errorf("expected nil for empty seeds, got %v", out)
	}

	seeds := Expand(Questions(TypeTechnical, ModeMCQ), 20)
	trimmed := Expand(seeds, 5)
	if len(trimmed) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(trimmed))
	}
	for i := range trimmed {
		if trimmed[i].ID != seeds[i].ID {
			t.Errorf("truncation reordered questions at %d", i)
		}
	}
}

func TestPermuteRemapsAnswer(t *testing.T) {
	questions := Expand(Questions(TypeSystemDesign, ModeMCQ), SessionLength)
	rng := rand.New(rand.NewSource(42))
	perms := Permute(questions, rng)

	if len(perms) != len(questions) {
		t.Fatalf("expected a permutation per question, got %d/%d", len(perms), len(questions))
	}
	for _, q := range questions {
		p, ok := perms[q.ID]
		if !ok {
			t.Fatalf("missing permutation for %s", q.ID)
		}
		if len(p.Order) != len(q.Options) {
			t.Fatalf("order length %d != option count %d", len(p.Order), len(q.Options))
		}
		if p.Order[p.Answer] != q.Answer {
			t.Errorf("%s: remapped answer %d does not point at canonical %d", q.ID, p.Answer, q.Answer)
		}
		// Order is a permutation of option indices.
		seen := make(map[int]bool)
		for _, idx := range p.Order {
			if idx < 0 || idx >= len(q.Options) || seen[idx] {
				t.Fatalf("%s: invalid order %v", q.ID, p.Order)
			}
			seen[idx] = true
		}
	}
}

func TestPermuteSkipsFreeform(t *testing.T) {
	questions := Expand(Questions(TypeTechnical, ModeCoding), SessionLength)
	perms := Permute(questions, rand.New(rand.NewSource(1)))
	if len(perms) != 0 {
		t.Errorf("expected no permutations for freeform questions, got %d", len(perms))
	}
}
