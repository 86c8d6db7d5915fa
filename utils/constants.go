// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis admin session cache keys.
const AuthCachePrefix = "adminauth:"

// AuthCacheTTL is the time-to-live for admin session cache entries.
const AuthCacheTTL = 10 * time.Minute

// AdminTokenDuration is how long an issued admin JWT stays valid.
const AdminTokenDuration = 12 * time.Hour

// LegalCacheKey is the Redis key holding the rendered legal sections.
const LegalCacheKey = "legal:sections"

// LegalCacheTTL is the time-to-live for the cached legal sections.
const LegalCacheTTL = 12 * time.Hour
