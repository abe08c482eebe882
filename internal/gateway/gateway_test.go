package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikram/pathwise/internal/bank"
	"github.com/avikram/pathwise/internal/interview"
	"github.com/avikram/pathwise/internal/notify"
	"github.com/avikram/pathwise/internal/remote"
	"github.com/avikram/pathwise/internal/report"
	"github.com/avikram/pathwise/internal/scoring"
	"github.com/avikram/pathwise/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "gw.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testOutcome(at time.Time) *interview.Outcome {
	score := 80
	return &interview.Outcome{
		Type:         bank.TypeTechnical,
		Mode:         bank.ModeMCQ,
		FinishedAt:   at,
		ScorePercent: &score,
		Answers:      map[string]scoring.Answer{"t-m-1": scoring.ChoiceAnswer(1)},
		Report: report.Report{
			Type:       bank.TypeTechnical,
			Mode:       bank.ModeMCQ,
			Weaknesses: []string{report.DimClarity},
		},
	}
}

func TestCommitRemoteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok","attemptId":"a1","user":{"interviewsCompleted":2,"averageScore":75}}`))
	}))
	defer srv.Close()

	st := testStore(t)
	bus := notify.NewBus()
	var events []notify.CompletionEvent
	bus.Subscribe(func(ev notify.CompletionEvent) { events = append(events, ev) })

	g := New(remote.NewClient(srv.URL, "tok"), st, bus, nil)
	res := g.Commit(context.Background(), testOutcome(time.Now()))

	assert.True(t, res.Synced)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 2, res.Stats.InterviewsCompleted)

	// Synced attempts do not land in local history...
	attempts, err := st.ListAttempts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, attempts)

	// ...but the report/plan cache is still refreshed.
	r, _, err := st.LastReport(context.Background())
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, []string{report.DimClarity}, r.Weaknesses)

	require.Len(t, events, 1)
	assert.True(t, events[0].Synced)
}

func TestCommitFallsBackToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	st := testStore(t)
	bus := notify.NewBus()
	var events []notify.CompletionEvent
	bus.Subscribe(func(ev notify.CompletionEvent) { events = append(events, ev) })

	g := New(remote.NewClient(srv.URL, "tok"), st, bus, nil)
	res := g.Commit(context.Background(), testOutcome(time.Now()))

	assert.False(t, res.Synced)
	assert.Nil(t, res.Stats)

	attempts, err := st.ListAttempts(context.Background())
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, bank.TypeTechnical, attempts[0].Type)
	require.NotNil(t, attempts[0].ScorePercent)
	assert.Equal(t, 80, *attempts[0].ScorePercent)

	p, err := st.LastPlan(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, p)

	require.Len(t, events, 1)
	assert.False(t, events[0].Synced)
}

func TestCommitUnconfiguredRemoteSavesLocally(t *testing.T) {
	st := testStore(t)
	g := New(remote.NewClient("", ""), st, nil, nil)

	res := g.Commit(context.Background(), testOutcome(time.Now()))
	assert.False(t, res.Synced)

	attempts, err := st.ListAttempts(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestCommitDedupesRapidDoubleSave(t *testing.T) {
	st := testStore(t)
	bus := notify.NewBus()
	var events int
	bus.Subscribe(func(notify.CompletionEvent) { events++ })
	g := New(nil, st, bus, nil)

	base := time.Now()
	g.Commit(context.Background(), testOutcome(base))
	g.Commit(context.Background(), testOutcome(base.Add(500*time.Millisecond)))

	attempts, err := st.ListAttempts(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 1, "second save inside the window collapses")
	assert.Equal(t, 2, events, "dedup still notifies listeners")

	// Outside the window a new record is appended.
	g.Commit(context.Background(), testOutcome(base.Add(3*time.Second)))
	attempts, err = st.ListAttempts(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 2)

	// A different mode inside the window is not a duplicate.
	other := testOutcome(base.Add(3100 * time.Millisecond))
	other.Mode = bank.ModeQuiz
	g.Commit(context.Background(), other)
	attempts, err = st.ListAttempts(context.Background())
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}

func TestCommitNilOutcome(t *testing.T) {
	g := New(nil, nil, nil, nil)
	res := g.Commit(context.Background(), nil)
	assert.Equal(t, Result{}, res)
}

func TestCommitSurvivesMissingStore(t *testing.T) {
	g := New(remote.NewClient("http://127.0.0.1:1", "tok"), nil, nil, nil)
	res := g.Commit(context.Background(), testOutcome(time.Now()))
	assert.False(t, res.Synced, "unreachable remote and no store still completes")
}
