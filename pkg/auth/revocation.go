package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/pizzeria/pkg/logger"
)

// RevocationList records tokens invalidated before their natural expiry.
// Implementations must be safe under concurrent Add/Contains.
type RevocationList interface {
	// Add marks a key revoked for the given duration. Adding an existing
	// key is not an error.
	Add(key string, ttl time.Duration) error
	// Contains reports whether the key is currently revoked.
	Contains(key string) bool
}

// minRevocationTTL keeps even an already-expired token on the list briefly,
// covering clock skew between the service and its clients.
const minRevocationTTL = time.Minute

// ── In-memory list ───────────────────────────────────────────────────────────

// MemoryRevocations is a process-local revocation set guarded by a RWMutex.
// Entries whose token lifetime has passed are treated as absent; the map
// itself is only reclaimed on restart.
type MemoryRevocations struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{entries: make(map[string]time.Time)}
}

func (m *MemoryRevocations) Add(key string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}

	m.mu.Lock()
	m.entries[key] = time.Now().Add(ttl)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRevocations) Contains(key string) bool {
	m.mu.RLock()
	deadline, ok := m.entries[key]
	m.mu.RUnlock()

	return ok && time.Now().Before(deadline)
}

// ── Redis-backed list ────────────────────────────────────────────────────────

// RedisRevocations stores revoked keys in Redis with a TTL matching the
// token's remaining lifetime, so the set prunes itself and logouts survive a
// service restart.
type RedisRevocations struct {
	rdb *redis.Client
}

func NewRedisRevocations(rdb *redis.Client) *RedisRevocations {
	return &RedisRevocations{rdb: rdb}
}

func (r *RedisRevocations) Add(key string, ttl time.Duration) error {
	if ttl < minRevocationTTL {
		ttl = minRevocationTTL
	}
	return r.rdb.Set(redisCtx(), "revoked:"+key, 1, ttl).Err()
}

func (r *RedisRevocations) Contains(key string) bool {
	n, err := r.rdb.Exists(redisCtx(), "revoked:"+key).Result()
	if err != nil {
		// Redis outage: accept the token rather than locking everyone out.
		logger.Warn("revocation lookup failed", "error", err)
		return false
	}
	return n > 0
}

func redisCtx() context.Context { return context.Background() }
