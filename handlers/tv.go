package handlers

import (
	"errors"
	"net/http"
	"time"

	"obratrack/services/tv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TVHandler exposes the display pairing endpoints.
type TVHandler struct {
	Service tv.TVService
	TTL     time.Duration
}

// NewTVHandler wires the pairing endpoints to a TV service. ttl is the
// configured session lifetime reported to clients as expiresIn.
func NewTVHandler(svc tv.TVService, ttl time.Duration) *TVHandler {
	if ttl <= 0 {
		ttl = tv.DefaultSessionTTL
	}
	return &TVHandler{Service: svc, TTL: ttl}
}

// CreateSessionHandler issues a fresh pairing session for a display. No
// authentication: the display holds no credentials until someone pairs.
func (h *TVHandler) CreateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	session, err := h.Service.CreateSession()
	if err != nil {
		logger.Error("Failed to create pairing session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pairing session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":     session.Token,
		"qrCode":    session.QRCode,
		"expiresAt": session.ExpiresAt,
		"expiresIn": int(h.TTL.Seconds()),
	})
}

// ConnectHandler binds the authenticated user to a pending session.
func (h *TVHandler) ConnectHandler(c *gin.Context) {
	logger := getLogger(c)
	token := c.Param("token")

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, summary, err := h.Service.Connect(token, u.ID)
	if err != nil {
		switch {
		case errors.Is(err, tv.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		case errors.Is(err, tv.ErrAlreadyConnected):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session already connected"})
		default:
			logger.Error("Failed to connect pairing session",
				zap.String("token", token), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Session connected successfully",
		"token":       session.Token,
		"user":        summary,
		"connectedAt": session.ConnectedAt,
	})
}

// StatusHandler returns the public state of a session. The display polls this
// without credentials, so absent, expired and closed sessions all answer 404.
func (h *TVHandler) StatusHandler(c *gin.Context) {
	logger := getLogger(c)
	token := c.Param("token")

	status, err := h.Service.Status(token)
	if err != nil {
		if errors.Is(err, tv.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return
		}
		logger.Error("Failed to read pairing session status",
			zap.String("token", token), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// DisconnectHandler closes a connected session on behalf of its bound user.
func (h *TVHandler) DisconnectHandler(c *gin.Context) {
	logger := getLogger(c)
	token := c.Param("token")

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.Disconnect(token, u.ID); err != nil {
		switch {
		case errors.Is(err, tv.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		case errors.Is(err, tv.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Session belongs to another user"})
		default:
			logger.Error("Failed to disconnect pairing session",
				zap.String("token", token), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session disconnected successfully"})
}
