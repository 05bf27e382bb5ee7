package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	userRepo "obratrack/database/repository/user"
	"obratrack/models"
	"obratrack/utils"

	"github.com/gin-gonic/gin"
)

// lookupUser resolves the user by ID through the Redis auth cache, falling
// back to Mongo on a miss. Cache failures degrade to a plain lookup.
func lookupUser(ctx context.Context, users userRepo.UserRepository, userID string) (*models.User, error) {
	cache := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + userID

	if data, err := cache.Get(ctx, key).Bytes(); err == nil {
		var u models.User
		if err := json.Unmarshal(data, &u); err == nil {
			// Only active users are cached, and isActive is not part of the
			// JSON representation.
			u.IsActive = true
			return &u, nil
		}
	}

	u, err := users.GetByID(userID)
	if err != nil || u == nil {
		return u, err
	}

	if !u.IsActive {
		return u, nil
	}
	if data, err := json.Marshal(u); err == nil {
		cacheCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		cache.Set(cacheCtx, key, data, utils.AuthCacheTTL)
	}
	return u, nil
}

// JWTAuthMiddleware validates the Bearer token and loads the authenticated
// user into the request context under "userID" and "user".
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := lookupUser(c.Request.Context(), users, userID)
		if err != nil || user == nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
