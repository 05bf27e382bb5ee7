// Package realtime delivers pairing state-change events to whatever display
// is currently listening on a session token. Channels are scoped per token;
// delivery is best-effort with no replay, so a listener that reconnects must
// recover state through the synchronous status endpoint.
package realtime

import "context"

// Event types published on pairing channels.
const (
	EventUserConnected    = "user_connected"
	EventUserDisconnected = "user_disconnected"
	EventSessionExpired   = "session_expired"
)

// Event is a state-change notification scoped to a single pairing token.
type Event struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// ChannelService is the per-token publish/subscribe abstraction. It is passed
// to the services that need it rather than held as a process-wide global.
type ChannelService interface {
	// Publish delivers the event to zero or more listeners currently
	// subscribed to the token's channel. It never blocks on slow subscribers
	// and never fails the caller; delivery problems are logged and dropped.
	Publish(ctx context.Context, token string, evt Event)
	// Subscribe registers interest in a token's channel. The returned channel
	// yields events until the returned cancel function is called; cancelling
	// only deregisters the listener and has no effect on session state.
	Subscribe(ctx context.Context, token string) (<-chan Event, func())
}
