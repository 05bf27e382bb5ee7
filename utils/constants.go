// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// AuthTokenTTL is the lifetime of issued JWT tokens.
const AuthTokenTTL = 30 * 24 * time.Hour

// TVChannelPrefix is the prefix for per-token pairing event channels.
const TVChannelPrefix = "tv:session:"
