// Package gateway commits finished sessions. It tries the remote
// progress API first and falls back to the local store, caching the
// latest report and plan and notifying listeners either way. A commit
// never fails the session: every error is logged and swallowed.
package gateway

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/avikram/pathwise/internal/interview"
	"github.com/avikram/pathwise/internal/notify"
	"github.com/avikram/pathwise/internal/remote"
	"github.com/avikram/pathwise/internal/store"
)

// dedupWindow is how close together two local saves of the same type
// and mode must be to count as one attempt. Retried commits after a
// flaky remote land well inside it.
const dedupWindow = 1500 * time.Millisecond

// User-facing confirmations, mirrored by the completion event.
const (
	msgSynced = "Interview attempt saved successfully! View your updated progress on the dashboard."
	msgLocal  = "Interview attempt saved locally! View your updated progress on the dashboard."
)

// Result tells the caller how the commit went, for display only.
type Result struct {
	Synced  bool
	Message string
	Stats   *remote.UserStats
}

// Gateway owns the commit pipeline.
type Gateway struct {
	remote *remote.Client
	store  *store.Store
	bus    *notify.Bus
	log    *zap.Logger
}

// New wires a gateway. Any dependency may be nil: a nil remote client
// or store simply disables that half, a nil logger is replaced with a
// nop one.
func New(rc *remote.Client, st *store.Store, bus *notify.Bus, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{remote: rc, store: st, bus: bus, log: log}
}

// Commit persists a finished session's outcome. Callers guard with the
// session's Persisted flag so each attempt is committed at most once.
func (g *Gateway) Commit(ctx context.Context, out *interview.Outcome) Result {
	if out == nil {
		return Result{}
	}

	if g.remote.Configured() {
		stats, err := g.remote.SaveAttempt(ctx, payloadFrom(out))
		if err == nil {
			g.cache(ctx, out)
			res := Result{Synced: true, Message: msgSynced, Stats: stats}
			g.publish(out, res)
			g.log.Info("attempt synced",
				zap.String("type", string(out.Type)),
				zap.String("mode", string(out.Mode)))
			return res
		}
		g.log.Warn("remote save failed, falling back to local store", zap.Error(err))
	} else {
		g.log.Info("remote sync not configured, saving locally")
	}

	g.saveLocal(ctx, out)
	res := Result{Synced: false, Message: msgLocal}
	g.publish(out, res)
	return res
}

func payloadFrom(out *interview.Outcome) remote.AttemptPayload {
	return remote.AttemptPayload{
		Type:         out.Type,
		Mode:         out.Mode,
		ScorePercent: out.ScorePercent,
		Answers:      out.Answers,
		Report:       out.Report,
		Plan:         out.Plan,
	}
}

// saveLocal appends the attempt to local history unless the latest
// record is a near-simultaneous duplicate, then refreshes the cache.
func (g *Gateway) saveLocal(ctx context.Context, out *interview.Outcome) {
	if g.store == nil {
		return
	}

	latest, err := g.store.LatestAttempt(ctx)
	if err != nil {
		g.log.Error("load latest attempt", zap.Error(err))
	}

	if isDuplicate(latest, out) {
		g.log.Info("duplicate attempt within dedup window, skipping insert",
			zap.String("type", string(out.Type)),
			zap.String("mode", string(out.Mode)))
	} else if err := g.store.InsertAttempt(ctx, attemptFrom(out)); err != nil {
		g.log.Error("insert attempt", zap.Error(err))
	}

	g.cache(ctx, out)
}

func isDuplicate(latest *store.Attempt, out *interview.Outcome) bool {
	if latest == nil || latest.Type != out.Type || latest.Mode != out.Mode {
		return false
	}
	delta := out.FinishedAt.Sub(latest.Timestamp)
	if delta < 0 {
		delta = -delta
	}
	return delta < dedupWindow
}

func attemptFrom(out *interview.Outcome) store.Attempt {
	return store.Attempt{
		Type:         out.Type,
		Mode:         out.Mode,
		Timestamp:    out.FinishedAt,
		ScorePercent: out.ScorePercent,
		Answers:      marshalLogged(out.Answers),
		Report:       marshalLogged(out.Report),
		Plan:         marshalLogged(out.Plan),
	}
}

// marshalLogged encodes v, degrading to an empty object on failure so a
// bad payload never blocks the save.
func marshalLogged(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}

func (g *Gateway) cache(ctx context.Context, out *interview.Outcome) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveLastReport(ctx, out.Report, out.FinishedAt); err != nil {
		g.log.Error("cache report", zap.Error(err))
	}
	if err := g.store.SaveLastPlan(ctx, out.Plan); err != nil {
		g.log.Error("cache plan", zap.Error(err))
	}
}

func (g *Gateway) publish(out *interview.Outcome, res Result) {
	g.bus.Publish(notify.CompletionEvent{
		Synced:       res.Synced,
		Message:      res.Message,
		ScorePercent: out.ScorePercent,
	})
}
