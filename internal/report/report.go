// Package report turns a scorecard into a post-interview report:
// strengths, weaknesses and a short list of curated study resources.
package report

import (
	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/scoring"
)

// Threshold separates strengths from weaknesses.
const Threshold = 75

// MaxResources caps the curated resource list.
const MaxResources = 4

// Dimension names, in classification order.
const (
	DimCorrectness = "Correctness"
	DimClarity     = "Clarity"
	DimStructure   = "Structure"
)

// Resource is a curated study link.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Report is the post-interview summary shown to the user and persisted
// with the attempt.
type Report struct {
	Type       bank.InterviewType `json:"type"`
	Mode       bank.Mode          `json:"mode"`
	Scores     scoring.Scorecard  `json:"scores"`
	Strengths  []string           `json:"strengths"`
	Weaknesses []string           `json:"weaknesses"`
	Resources  []Resource         `json:"resources"`
}

// Build classifies each measured dimension against Threshold and
// attaches resources for the weak ones. Correctness is skipped when the
// scorecard has none (freeform sessions); the baseline clarity and
// structure values of choice sessions are classified like any other.
func Build(typ bank.InterviewType, mode bank.Mode, scores scoring.Scorecard) Report {
	var strengths, weaknesses []string

	classify := func(name string, value int) {
		if value >= Threshold {
			strengths = append(strengths, name)
		} else {
			weaknesses = append(weaknesses, name)
		}
	}

	if scores.Correctness != nil {
		classify(DimCorrectness, *scores.Correctness)
	}
	classify(DimClarity, scores.Clarity)
	classify(DimStructure, scores.Structure)

	return Report{
		Type:       typ,
		Mode:       mode,
		Scores:     scores,
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Resources:  resourcesFor(weaknesses),
	}
}
