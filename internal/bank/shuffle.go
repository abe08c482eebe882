package bank

import "math/rand"

// Permutation records the display order of one choice question's options.
// Order[i] is the canonical option index shown at position i, and Answer
// is the display position of the correct option, so that
// Order[Answer] == Template.Answer.
type Permutation struct {
	Order  []int
	Answer int
}

// Permute computes one Permutation per choice question, using rng for
// the shuffle. Non-choice questions are skipped. Callers compute this
// once per session and reuse it for the session's lifetime.
func Permute(questions []Template, rng *rand.Rand) map[string]Permutation {
	perms := make(map[string]Permutation)
	for _, q := range questions {
		if q.Kind != KindChoice {
			continue
		}
		order := rng.Perm(len(q.Options))
		answer := 0
		for pos, canonical := range order {
			if canonical == q.Answer {
				answer = pos
				break
			}
		}
		perms[q.ID] = Permutation{Order: order, Answer: answer}
	}
	return perms
}
