// Package plan builds a spaced practice plan from a report's weak
// dimensions.
package plan

import (
	"time"

	"github.com/avikram/pathwise/internal/report"
)

// ReviewOffsets are the day offsets of each entry's review dates.
var ReviewOffsets = []int{1, 3, 7}

// Entry schedules follow-up practice for one weak topic.
type Entry struct {
	Topic string      `json:"topic"`
	Due   []time.Time `json:"due"`
}

// PracticePlan is the full schedule generated after a session.
type PracticePlan struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Entries     []Entry   `json:"entries"`
}

// Build creates one entry per report weakness with review dates at the
// configured offsets from now. A report without weaknesses yields a
// plan with no entries.
func Build(r report.Report, now time.Time) PracticePlan {
	entries := make([]Entry, 0, len(r.Weaknesses))
	for _, topic := range r.Weaknesses {
		due := make([]time.Time, len(ReviewOffsets))
		for i, days := range ReviewOffsets {
			due[i] = now.AddDate(0, 0, days)
		}
		entries = append(entries, Entry{Topic: topic, Due: due})
	}
	return PracticePlan{GeneratedAt: now, Entries: entries}
}
