package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avikram/pathwise/internal/plan"
	"github.com/avikram/pathwise/internal/report"
)

// Cache namespaces. One well-known key per namespace keeps the "last
// seen" semantics of the report and plan caches explicit.
const (
	nsReports = "reports"
	nsPlans   = "plans"
	keyLast   = "last"
)

// putJSON upserts a JSON-encoded value into the cache table.
func (s *Store) putJSON(ctx context.Context, ns, key string, v any, at time.Time) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache %s/%s: %w", ns, key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cache (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		ns, key, string(data), at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write cache %s/%s: %w", ns, key, err)
	}
	return nil
}

// getJSON loads a cache entry into v. Returns (false, nil) when absent.
func (s *Store) getJSON(ctx context.Context, ns, key string, v any) (bool, time.Time, error) {
	var (
		value string
		ms    int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM cache WHERE namespace = ? AND key = ?`,
		ns, key,
	).Scan(&value, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return false, time.Time{}, nil
	}
	if err != nil {
		return false, time.Time{}, fmt.Errorf("read cache %s/%s: %w", ns, key, err)
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return false, time.Time{}, fmt.Errorf("decode cache %s/%s: %w", ns, key, err)
	}
	return true, time.UnixMilli(ms), nil
}

// SaveLastReport caches the most recent report with its save time.
func (s *Store) SaveLastReport(ctx context.Context, r report.Report, at time.Time) error {
	return s.putJSON(ctx, nsReports, keyLast, r, at)
}

// LastReport returns the cached report and its save time, nil when no
// report has been cached yet.
func (s *Store) LastReport(ctx context.Context) (*report.Report, time.Time, error) {
	var r report.Report
	ok, at, err := s.getJSON(ctx, nsReports, keyLast, &r)
	if err != nil || !ok {
		return nil, time.Time{}, err
	}
	return &r, at, nil
}

// SaveLastPlan caches the most recent practice plan.
func (s *Store) SaveLastPlan(ctx context.Context, p plan.PracticePlan) error {
	return s.putJSON(ctx, nsPlans, keyLast, p, p.GeneratedAt)
}

// LastPlan returns the cached practice plan, nil when absent.
func (s *Store) LastPlan(ctx context.Context) (*plan.PracticePlan, error) {
	var p plan.PracticePlan
	ok, _, err := s.getJSON(ctx, nsPlans, keyLast, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}
