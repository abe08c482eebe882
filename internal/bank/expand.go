package bank

import "fmt"

// SessionLength is the number of questions every session is padded to.
const SessionLength = 15

// Expand pads seeds to exactly target questions by cycling clones of the
// seed set. Clones get a derived id and a variant-numbered prompt so
// repeats stay distinguishable in review. An empty seed set yields nil;
// a set at or above target is truncated to target with no changes.
func Expand(seeds []Template, target int) []Template {
	if len(seeds) == 0 {
		return nil
	}
	if len(seeds) >= target {
		out := make([]Template, target)
		copy(out, seeds[:target])
		return out
	}

	out := make([]Template, 0, target)
	out = append(out, seeds...)
	for i := 0; len(out) < target; i++ {
		clone := seeds[i%len(seeds)]
		copyIndex := len(out) + 1
		clone.ID = fmt.Sprintf("%s-x%d", clone.ID, copyIndex)
		switch clone.Kind {
		case KindChoice:
			clone.Prompt = fmt.Sprintf("%s (variant %d)", clone.Prompt, copyIndex)
		case KindCode, KindText:
			clone.Prompt = fmt.Sprintf("%s (v%d)", clone.Prompt, copyIndex)
		}
		out = append(out, clone)
	}
	return out
}
