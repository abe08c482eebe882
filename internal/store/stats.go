package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/avikram/pathwise/internal/bank"
)

// TypeSummary aggregates the attempt history of one interview type for
// the dashboard.
type TypeSummary struct {
	Type         bank.InterviewType
	Count        int
	Scored       int // attempts with a score percent
	AverageScore int // rounded mean over scored attempts, 0 when none
	Last         time.Time
}

// Summaries aggregates the full history per interview type. Records
// identical in type, mode and second-rounded timestamp are counted
// once; double saves from a flaky sync land within the same second.
func (s *Store) Summaries(ctx context.Context) ([]TypeSummary, error) {
	attempts, err := s.ListAttempts(ctx)
	if err != nil {
		return nil, fmt.Errorf("summaries: %w", err)
	}

	type acc struct {
		count    int
		scored   int
		scoreSum int
		last     time.Time
	}
	seen := make(map[string]bool)
	byType := make(map[bank.InterviewType]*acc)

	for _, a := range attempts {
		key := fmt.Sprintf("%s|%s|%d", a.Type, a.Mode, a.Timestamp.Round(time.Second).Unix())
		if seen[key] {
			continue
		}
		seen[key] = true

		ac := byType[a.Type]
		if ac == nil {
			ac = &acc{}
			byType[a.Type] = ac
		}
		ac.count++
		if a.ScorePercent != nil {
			ac.scored++
			ac.scoreSum += *a.ScorePercent
		}
		if a.Timestamp.After(ac.last) {
			ac.last = a.Timestamp
		}
	}

	var out []TypeSummary
	appendSummary := func(t bank.InterviewType) {
		ac := byType[t]
		if ac == nil {
			return
		}
		avg := 0
		if ac.scored > 0 {
			avg = int(math.Round(float64(ac.scoreSum) / float64(ac.scored)))
		}
		out = append(out, TypeSummary{
			Type:         t,
			Count:        ac.count,
			Scored:       ac.scored,
			AverageScore: avg,
			Last:         ac.last,
		})
		delete(byType, t)
	}
	for _, t := range bank.Types {
		appendSummary(t)
	}
	for t := range byType {
		appendSummary(t)
	}
	return out, nil
}
