// Package notify carries in-process completion events so surfaces like
// the dashboard can refresh after an attempt is committed.
package notify

import "sync"

// CompletionEvent announces a committed attempt.
type CompletionEvent struct {
	// Synced is true when the attempt reached the remote API, false
	// when it was saved to the local fallback store.
	Synced bool

	// Message is a short human-readable confirmation.
	Message string

	// ScorePercent mirrors the attempt score, nil for freeform modes.
	ScorePercent *int
}

// Bus is a minimal publish/subscribe fanout. Publish never blocks on
// subscriber bookkeeping; handlers run synchronously on the publishing
// goroutine.
type Bus struct {
	mu   sync.Mutex
	subs []func(CompletionEvent)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for future events.
func (b *Bus) Subscribe(fn func(CompletionEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers ev to every subscriber. Safe on a nil bus.
func (b *Bus) Publish(ev CompletionEvent) {
	if b == nil {
		return
	}
	b.mu.Lock()
	subs := make([]func(CompletionEvent), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
