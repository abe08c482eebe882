package coach

import (
	"fmt"
	"strings"
)

const reviewSystemPrompt = `You are an experienced technical interview coach. A candidate has just finished a mock interview session and wants short, actionable feedback on their answers.`

func buildReviewUserMessage(input ReviewInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Interview type: %s\n", input.InterviewType))
	b.WriteString(fmt.Sprintf("Mode: %s\n", input.Mode))
	if input.ScorePercent != nil {
		b.WriteString(fmt.Sprintf("Multiple-choice score: %d%%\n", *input.ScorePercent))
	}

	b.WriteString("\nWeak areas identified:\n")
	if len(input.Weaknesses) == 0 {
		b.WriteString("None\n")
	} else {
		for _, w := range input.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	if len(input.Exchanges) > 0 {
		b.WriteString("\nFreeform answers:\n")
		for i, ex := range input.Exchanges {
			b.WriteString(fmt.Sprintf("### Question %d\n%s\n", i+1, ex.Prompt))
			if strings.TrimSpace(ex.Answer) == "" {
				b.WriteString("Answer: (left blank)\n")
			} else {
				b.WriteString(fmt.Sprintf("Answer: %s\n", ex.Answer))
			}
			b.WriteString(fmt.Sprintf("Clarity: %d/100, Structure: %d/100\n", ex.Clarity, ex.Structure))
		}
	}

	b.WriteString(`
Instructions:
Write a short coaching review:
1. Summarize the candidate's overall performance in 2-4 sentences. Be specific about what the answers show, not generic.
2. List 2-4 concrete tips the candidate can apply in their next session. Each tip should name the behavior to change and how (e.g., "open system design answers by stating requirements before components").
3. Be encouraging but honest. Do not restate the scores back to the candidate.`)

	return b.String()
}
