package realtime

import (
	"context"
	"testing"
	"time"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	ctx := context.Background()

	events, cancel := hub.Subscribe(ctx, "tok-1")
	defer cancel()

	hub.Publish(ctx, "tok-1", Event{Type: EventUserConnected})

	select {
	case evt := <-events:
		if evt.Type != EventUserConnected {
			t.Errorf("event type = %q, want %q", evt.Type, EventUserConnected)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubIsolatesTokens(t *testing.T) {
	hub := NewHub()
	ctx := context.Background()

	events, cancel := hub.Subscribe(ctx, "tok-a")
	defer cancel()

	hub.Publish(ctx, "tok-b", Event{Type: EventUserConnected})

	select {
	case evt := <-events:
		t.Errorf("received event %q for a different token", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPublishWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub()
	// Must not panic or block.
	hub.Publish(context.Background(), "nobody-home", Event{Type: EventSessionExpired})
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	ctx := context.Background()

	_, cancel := hub.Subscribe(ctx, "tok-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// More events than the subscriber buffer holds; the surplus is dropped.
		for i := 0; i < 50; i++ {
			hub.Publish(ctx, "tok-1", Event{Type: EventUserConnected})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ctx := context.Background()

	events, cancel := hub.Subscribe(ctx, "tok-1")
	if got := hub.Subscribers("tok-1"); got != 1 {
		t.Fatalf("Subscribers() = %d, want 1", got)
	}

	cancel()
	if got := hub.Subscribers("tok-1"); got != 0 {
		t.Errorf("Subscribers() after cancel = %d, want 0", got)
	}

	if _, open := <-events; open {
		t.Error("channel still open after cancel")
	}

	// Cancelling twice must be safe.
	cancel()
}
