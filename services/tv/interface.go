package tv

import (
	tvSessionRepo "obratrack/database/repository/tvsession"
	userRepo "obratrack/database/repository/user"
	"obratrack/models"
	"obratrack/services/realtime"

	"time"
)

// TVService manages the lifecycle of display pairing sessions: a display asks
// for a code, a signed-in phone scans it to connect, and either side observes
// the state through the status query or the event channel.
type TVService interface {
	// CreateSession issues a token plus QR code and persists a pending
	// session expiring after the configured TTL.
	CreateSession() (*models.TVSession, error)
	// Connect binds the authenticated user to a pending session and emits
	// user_connected on the session's channel.
	Connect(token, userID string) (*models.TVSession, *models.UserSummary, error)
	// Status is a side-effect-free read of the session's public state,
	// usable without authentication.
	Status(token string) (*models.TVSessionStatus, error)
	// Disconnect closes a connected session on behalf of the bound user and
	// emits user_disconnected.
	Disconnect(token, userID string) error
	// ExpireSession force-closes a session whose deadline elapsed and emits
	// session_expired if it was still open. Invoked by the expiry worker.
	ExpireSession(token string) error
}

// ExpiryScheduler enqueues a deferred close for a session at its deadline.
type ExpiryScheduler interface {
	ScheduleExpiry(token string, at time.Time) error
}

// DefaultTVService is the production implementation.
type DefaultTVService struct {
	Repo      tvSessionRepo.TVSessionRepository
	Users     userRepo.UserRepository
	Channel   realtime.ChannelService
	Generator *CodeGenerator
	Scheduler ExpiryScheduler
	TTL       time.Duration
}
