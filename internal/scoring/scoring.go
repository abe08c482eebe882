// Package scoring grades a finished session along three dimensions:
// correctness, clarity and structure. Correctness is only computable for
// choice sessions; freeform sessions are graded heuristically from
// answer length and keyword coverage.
package scoring

import (
	"math"
	"strings"

	"github.com/avikram/pathwise/internal/bank"
)

// Answer is one submitted answer. ChoiceAnswer carries the selected
// display position of a choice question; TextAnswer carries freeform
// text. The two are the only implementations.
type Answer interface {
	isAnswer()
}

// ChoiceAnswer is the selected option position in display order.
type ChoiceAnswer int

// TextAnswer is a freeform code or prose answer.
type TextAnswer string

func (ChoiceAnswer) isAnswer() {}
func (TextAnswer) isAnswer()   {}

const (
	// Baselines stand in for dimensions a choice session cannot measure.
	ClarityBaseline   = 70
	StructureBaseline = 65

	// structureFloor is the minimum structure score for any answered
	// freeform question.
	structureFloor = 60
)

// Scorecard holds the three graded dimensions. Correctness is nil when
// the session mode cannot measure it (freeform modes).
type Scorecard struct {
	Correctness *int `json:"correctness,omitempty"`
	Clarity     int  `json:"clarity"`
	Structure   int  `json:"structure"`
}

// Score grades a session. For choice sessions correctness is the percent
// of questions whose answered display position matches the permutation's
// remapped answer, and clarity/structure take fixed baselines. For
// freeform sessions correctness is nil and clarity/structure are the
// rounded means over answered questions, zero when nothing was answered.
func Score(mode bank.Mode, questions []bank.Template, answers map[string]Answer, perms map[string]bank.Permutation) Scorecard {
	if mode.Kind() == bank.KindChoice {
		return scoreChoice(questions, answers, perms)
	}
	return scoreFreeform(questions, answers)
}

func scoreChoice(questions []bank.Template, answers map[string]Answer, perms map[string]bank.Permutation) Scorecard {
	correct := 0
	for _, q := range questions {
		ans, ok := answers[q.ID].(ChoiceAnswer)
		if !ok {
			continue
		}
		want := q.Answer
		if p, ok := perms[q.ID]; ok {
			want = p.Answer
		}
		if int(ans) == want {
			correct++
		}
	}
	percent := 0
	if len(questions) > 0 {
		percent = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	}
	return Scorecard{
		Correctness: &percent,
		Clarity:     ClarityBaseline,
		Structure:   StructureBaseline,
	}
}

func scoreFreeform(questions []bank.Template, answers map[string]Answer) Scorecard {
	var claritySum, structureSum, answered int
	for _, q := range questions {
		text, ok := answers[q.ID].(TextAnswer)
		if !ok {
			continue
		}
		answered++
		claritySum += ClarityOfText(string(text))
		structureSum += StructureOfKeywords(string(text), q.Keywords())
	}

	var clarity, structure int
	if answered > 0 {
		clarity = int(math.Round(float64(claritySum) / float64(answered)))
		structure = int(math.Round(float64(structureSum) / float64(answered)))
	}
	return Scorecard{Clarity: clarity, Structure: structure}
}

// ClarityOfText maps answer length to a clarity score. Buckets are
// monotonic: longer answers never score lower.
func ClarityOfText(text string) int {
	if text == "" {
		return 0
	}
	switch n := len(strings.TrimSpace(text)); {
	case n < 40:
		return 40
	case n < 120:
		return 65
	case n < 300:
		return 80
	default:
		return 90
	}
}

// StructureOfKeywords scores keyword coverage: a hit is the lowercased
// answer containing the lowercased first word of a keyword phrase. The
// score is the hit percentage floored at 60; questions without keywords
// score the floor outright.
func StructureOfKeywords(text string, keywords []string) int {
	if text == "" || len(keywords) == 0 {
		return structureFloor
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, k := range keywords {
		fields := strings.Fields(strings.ToLower(k))
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(lower, fields[0]) {
			hits++
		}
	}
	pct := int(math.Round(float64(hits) / float64(len(keywords)) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < structureFloor {
		return structureFloor
	}
	return pct
}
