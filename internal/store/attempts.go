package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avikram/pathwise/internal/bank"
)

// Attempt is one committed interview attempt. Answers, Report and Plan
// are stored as JSON so history survives schema evolution of the
// in-memory types.
type Attempt struct {
	ID           string
	Type         bank.InterviewType
	Mode         bank.Mode
	Timestamp    time.Time
	ScorePercent *int
	Answers      json.RawMessage
	Report       json.RawMessage
	Plan         json.RawMessage
}

// InsertAttempt persists an attempt, assigning a UUID when the record
// has none.
func (s *Store) InsertAttempt(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	var score sql.NullInt64
	if a.ScorePercent != nil {
		score = sql.NullInt64{Int64: int64(*a.ScorePercent), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, type, mode, timestamp, score_percent, answers, report, plan)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Type), string(a.Mode), a.Timestamp.UnixMilli(), score,
		rawOrEmpty(a.Answers), rawOrEmpty(a.Report), rawOrEmpty(a.Plan),
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// ListAttempts returns the full history, newest first.
func (s *Store) ListAttempts(ctx context.Context) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, mode, timestamp, score_percent, answers, report, plan
		 FROM attempts ORDER BY timestamp DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// LatestAttempt returns the most recent attempt, nil when the history
// is empty.
func (s *Store) LatestAttempt(ctx context.Context) (*Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, mode, timestamp, score_percent, answers, report, plan
		 FROM attempts ORDER BY timestamp DESC, id LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("latest attempt: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	a, err := scanAttempt(rows)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAttempt(rows *sql.Rows) (Attempt, error) {
	var (
		a       Attempt
		typ     string
		mode    string
		ms      int64
		score   sql.NullInt64
		answers string
		report  string
		plan    string
	)
	if err := rows.Scan(&a.ID, &typ, &mode, &ms, &score, &answers, &report, &plan); err != nil {
		return Attempt{}, fmt.Errorf("scan attempt: %w", err)
	}
	a.Type = bank.InterviewType(typ)
	a.Mode = bank.Mode(mode)
	a.Timestamp = time.UnixMilli(ms)
	if score.Valid {
		n := int(score.Int64)
		a.ScorePercent = &n
	}
	a.Answers = json.RawMessage(answers)
	a.Report = json.RawMessage(report)
	a.Plan = json.RawMessage(plan)
	return a, nil
}

func rawOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
