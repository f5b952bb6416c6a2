package port

import (
	"context"
	"time"
)

// Cache is the minimal contract for a key-value cache used by the application.
// Implementations must be safe for concurrent use and context-aware so callers
// control timeouts and cancellation.
//
// Values are stored as strings to keep the port free of serialization
// concerns; callers encode/decode as needed.
type Cache interface {
	// Get fetches the value for key. A miss is reported as ("", ErrMiss);
	// a non-nil error otherwise means a transport or server failure.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key with the provided TTL. Zero or negative TTL
	// means no expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes one or more keys and returns the number of keys removed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping verifies connectivity with the cache backend.
	Ping(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// ErrMiss signals a cache miss in a typed way so callers can tell misses
// apart from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (e errMiss) Error() string { return "cache: miss" }
