package tv

import (
	"context"
	"fmt"
	"time"

	"obratrack/models"
	"obratrack/services/realtime"
	"obratrack/utils"

	"go.uber.org/zap"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 10 * time.Minute

func (s *DefaultTVService) sessionTTL() time.Duration {
	if s.TTL != 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// CreateSession issues a token and QR code, persists the pending session and
// schedules its deferred expiry. A QR encoding failure aborts the request
// before anything is written, so a failed creation leaves no orphan record.
func (s *DefaultTVService) CreateSession() (*models.TVSession, error) {
	logger := utils.GetLogger()

	token, qrDataURL, err := s.Generator.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &models.TVSession{
		Token:     token,
		QRCode:    qrDataURL,
		State:     models.TVSessionPending,
		ExpiresAt: now.Add(s.sessionTTL()),
		Active:    true,
	}

	if err := s.Repo.Create(sess); err != nil {
		return nil, err
	}

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleExpiry(token, sess.ExpiresAt); err != nil {
			// The TTL index and lazy-expiry reads still guarantee the
			// session dies on time; only the push notification is at risk.
			logger.Warn("tv: failed to schedule expiry task",
				zap.String("token", token), zap.Error(err))
		}
	}

	logger.Info("tv: pairing session created",
		zap.String("token", token), zap.Time("expiresAt", sess.ExpiresAt))
	return sess, nil
}

// Connect transitions the session to connected, bound to the given user, and
// notifies any display listening on the token's channel.
func (s *DefaultTVService) Connect(token, userID string) (*models.TVSession, *models.UserSummary, error) {
	logger := utils.GetLogger()

	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("tv: failed to resolve connecting user %s: %w", userID, err)
	}
	if usr == nil {
		return nil, nil, fmt.Errorf("tv: connecting user %s not found", userID)
	}
	summary := usr.Summary()

	sess, err := s.Repo.MarkConnected(token, userID)
	if err != nil {
		return nil, nil, err
	}

	s.Channel.Publish(context.Background(), token, realtime.Event{
		Type: realtime.EventUserConnected,
		Data: map[string]any{
			"user":        summary,
			"connectedAt": sess.ConnectedAt,
		},
	})

	logger.Info("tv: user connected to session",
		zap.String("token", token), zap.String("userId", userID))
	return sess, &summary, nil
}

// Status returns the public view of the session, with the bound user's
// summary resolved when present. Absent and expired sessions are reported
// identically as not found.
func (s *DefaultTVService) Status(token string) (*models.TVSessionStatus, error) {
	sess, err := s.Repo.FindActiveByToken(token)
	if err != nil {
		return nil, err
	}

	status := &models.TVSessionStatus{
		Token:       sess.Token,
		State:       sess.State,
		ConnectedAt: sess.ConnectedAt,
		ExpiresAt:   sess.ExpiresAt,
	}
	if sess.UserID != "" {
		usr, err := s.Users.GetByID(sess.UserID)
		switch {
		case err != nil:
			// Degrade to a status without the user rather than failing the
			// whole poll, but leave a trace of the lookup failure.
			utils.GetLogger().Warn("tv: failed to resolve bound user",
				zap.String("token", token), zap.String("userId", sess.UserID), zap.Error(err))
		case usr != nil:
			summary := usr.Summary()
			status.User = &summary
		}
	}
	return status, nil
}

// Disconnect closes a connected session on behalf of its bound user and
// pushes the final event to the display.
func (s *DefaultTVService) Disconnect(token, userID string) error {
	logger := utils.GetLogger()

	if err := s.Repo.MarkClosed(token, userID); err != nil {
		return err
	}

	s.Channel.Publish(context.Background(), token, realtime.Event{
		Type: realtime.EventUserDisconnected,
		Data: map[string]any{
			"token":          token,
			"disconnectedAt": time.Now(),
		},
	})

	logger.Info("tv: session disconnected",
		zap.String("token", token), zap.String("userId", userID))
	return nil
}

// ExpireSession is the deferred close executed at the session's deadline.
// The expiry event is best-effort and display-side only: if nobody is
// subscribed, it just disappears.
func (s *DefaultTVService) ExpireSession(token string) error {
	closed, err := s.Repo.MarkExpired(token)
	if err != nil {
		return err
	}
	if !closed {
		// Already disconnected or swept; nothing to announce.
		return nil
	}

	s.Channel.Publish(context.Background(), token, realtime.Event{
		Type: realtime.EventSessionExpired,
		Data: map[string]any{
			"token":     token,
			"expiredAt": time.Now(),
		},
	})

	utils.GetLogger().Info("tv: session expired", zap.String("token", token))
	return nil
}
