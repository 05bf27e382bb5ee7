package tvSessionRepo

import (
	"errors"

	"obratrack/models"
)

// Sentinel errors reported by the session store. Absent and expired sessions
// are both ErrNotFound: callers cannot tell the two apart.
var (
	ErrNotFound         = errors.New("tv session not found")
	ErrAlreadyConnected = errors.New("tv session already connected")
	ErrForbidden        = errors.New("tv session bound to another user")
	ErrDuplicateToken   = errors.New("tv session token already exists")
)

// TVSessionRepository defines methods for pairing session data access.
//
// All lookups apply lazy expiry: a session whose expiresAt has passed is
// treated as absent regardless of whether the TTL sweep has removed it.
type TVSessionRepository interface {
	// Create inserts a new pending session. Returns ErrDuplicateToken if the
	// token is already taken (an internal invariant breach, since tokens come
	// from a collision-resistant generator).
	Create(sess *models.TVSession) error
	// FindActiveByToken returns the session only if it is active and not
	// expired; otherwise ErrNotFound.
	FindActiveByToken(token string) (*models.TVSession, error)
	// MarkConnected atomically transitions pending -> connected and binds the
	// user. The guard is a single conditional update at the storage layer, so
	// exactly one of two racing calls can win. Returns ErrAlreadyConnected if
	// the session is connected, ErrNotFound if absent or expired.
	MarkConnected(token, userID string) (*models.TVSession, error)
	// MarkClosed transitions a connected session to closed. Only the bound
	// user may close it: ErrForbidden on identity mismatch, ErrNotFound if no
	// active connected session matches.
	MarkClosed(token, userID string) error
	// MarkExpired force-closes a session at its deadline, whatever state it is
	// in. Reports whether a still-open session was actually closed, so the
	// caller knows whether to emit an expiry event.
	MarkExpired(token string) (bool, error)
}
