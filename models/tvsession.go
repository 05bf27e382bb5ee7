package models

import "time"

// TVSessionState is the explicit lifecycle state of a pairing session.
// Transitions are monotonic: pending -> connected -> closed, or
// pending -> closed when the session expires or is cancelled before anyone
// connects. There is no way back.
type TVSessionState string

const (
	TVSessionPending   TVSessionState = "pending"
	TVSessionConnected TVSessionState = "connected"
	TVSessionClosed    TVSessionState = "closed"
)

// TVSession binds a display-side pairing token to an authenticated user.
// The token is the external handle for every operation; the QR code is the
// encoded rendering of it, generated once at creation and stored for reuse.
type TVSession struct {
	Token       string         `bson:"token" json:"token"`
	QRCode      string         `bson:"qrCode" json:"qrCode"`
	State       TVSessionState `bson:"state" json:"state"`
	UserID      string         `bson:"userId,omitempty" json:"userId,omitempty"`
	ConnectedAt *time.Time     `bson:"connectedAt,omitempty" json:"connectedAt,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
	ExpiresAt   time.Time      `bson:"expiresAt" json:"expiresAt"`
	Active      bool           `bson:"active" json:"-"`
}

// Expired reports whether the session's deadline has passed at the given
// instant. Every reader must treat an expired session as closed, even if the
// background sweep has not removed the record yet.
func (s *TVSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Connectable reports whether a connect attempt at the given instant could
// legally bind an identity to this session.
func (s *TVSession) Connectable(now time.Time) bool {
	return s.Active && s.State == TVSessionPending && !s.Expired(now)
}

// Visible reports whether lookups should still return this session. Absent,
// closed and expired sessions are all reported the same way to callers.
func (s *TVSession) Visible(now time.Time) bool {
	return s.Active && !s.Expired(now)
}

// TVSessionStatus is the public, unauthenticated view of a session returned
// by the status endpoint.
type TVSessionStatus struct {
	Token       string         `json:"token"`
	State       TVSessionState `json:"state"`
	User        *UserSummary   `json:"user,omitempty"`
	ConnectedAt *time.Time     `json:"connectedAt,omitempty"`
	ExpiresAt   time.Time      `json:"expiresAt"`
}
