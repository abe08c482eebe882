package notify

import "testing"

func TestPublishFansOut(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(ev CompletionEvent) { got = append(got, "a:"+ev.Message) })
	bus.Subscribe(func(ev CompletionEvent) { got = append(got, "b:"+ev.Message) })

	bus.Publish(CompletionEvent{Message: "saved"})

	if len(got) != 2 || got[0] != "a:saved" || got[1] != "b:saved" {
		t.Errorf("unexpected deliveries: %v", got)
	}
}

func TestPublishNilBus(t *testing.T) {
	var bus *Bus
	bus.Publish(CompletionEvent{}) // must not panic
}

func TestPublishNoSubscribers(t *testing.T) {
	NewBus().Publish(CompletionEvent{Synced: true})
}
