package middleware

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nahidn228/HostelMate-Server/models"
)

const defaultRoleCacheTTL = 30 * time.Second

// RoleCache is a short-lived Redis cache for role lookups. Role changes
// take effect within the configured TTL; a nil client disables caching
// and every lookup falls through to the database.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache builds a cache from REDIS_ADDR and ROLE_CACHE_TTL. With
// no REDIS_ADDR set, the returned cache is a pass-through.
func NewRoleCache() *RoleCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &RoleCache{ttl: defaultRoleCacheTTL}
	}

	ttl := defaultRoleCacheTTL
	if raw := os.Getenv("ROLE_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("invalid ROLE_CACHE_TTL %q, using %s", raw, defaultRoleCacheTTL)
		} else {
			ttl = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &RoleCache{client: client, ttl: ttl}
}

func roleKey(email string) string { return "role:" + email }

func (rc *RoleCache) Get(ctx context.Context, email string) (models.Role, bool) {
	if rc == nil || rc.client == nil {
		return "", false
	}
	val, err := rc.client.Get(ctx, roleKey(email)).Result()
	if err != nil {
		return "", false
	}
	return models.Role(val), true
}

func (rc *RoleCache) Set(ctx context.Context, email string, role models.Role) {
	if rc == nil || rc.client == nil {
		return
	}
	if err := rc.client.Set(ctx, roleKey(email), string(role), rc.ttl).Err(); err != nil {
		log.Printf("role cache set failed for %s: %v", email, err)
	}
}

// Invalidate drops a cached role so promotions and deletions are visible
// on the next request instead of after TTL expiry.
func (rc *RoleCache) Invalidate(ctx context.Context, email string) {
	if rc == nil || rc.client == nil {
		return
	}
	if err := rc.client.Del(ctx, roleKey(email)).Err(); err != nil {
		log.Printf("role cache invalidate failed for %s: %v", email, err)
	}
}
