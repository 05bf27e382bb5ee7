package models

import (
	"testing"
	"time"
)

func TestTVSessionExpired(t *testing.T) {
	now := time.Now()
	sess := TVSession{ExpiresAt: now.Add(time.Minute)}

	if sess.Expired(now) {
		t.Error("Expired() = true before the deadline")
	}
	if !sess.Expired(now.Add(time.Minute)) {
		t.Error("Expired() = false at the exact deadline, want true")
	}
	if !sess.Expired(now.Add(2 * time.Minute)) {
		t.Error("Expired() = false after the deadline")
	}
}

func TestTVSessionConnectable(t *testing.T) {
	now := time.Now()
	base := TVSession{State: TVSessionPending, Active: true, ExpiresAt: now.Add(time.Minute)}

	if !base.Connectable(now) {
		t.Error("pending active session should be connectable")
	}

	connected := base
	connected.State = TVSessionConnected
	if connected.Connectable(now) {
		t.Error("connected session should not be connectable")
	}

	closed := base
	closed.State = TVSessionClosed
	if closed.Connectable(now) {
		t.Error("closed session should not be connectable")
	}

	inactive := base
	inactive.Active = false
	if inactive.Connectable(now) {
		t.Error("inactive session should not be connectable")
	}

	expired := base
	expired.ExpiresAt = now.Add(-time.Second)
	if expired.Connectable(now) {
		t.Error("expired session should not be connectable")
	}
}

func TestTVSessionVisible(t *testing.T) {
	now := time.Now()

	visible := TVSession{State: TVSessionConnected, Active: true, ExpiresAt: now.Add(time.Minute)}
	if !visible.Visible(now) {
		t.Error("active unexpired session should be visible")
	}

	expired := visible
	expired.ExpiresAt = now.Add(-time.Second)
	if expired.Visible(now) {
		t.Error("expired session should not be visible")
	}

	inactive := visible
	inactive.Active = false
	if inactive.Visible(now) {
		t.Error("inactive session should not be visible")
	}
}
