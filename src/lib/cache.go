package lib

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheGetJSON reads and decodes a cached value into out. A nil client
// or a missing key is reported as a miss, never an error: the catalog
// endpoints fall back to the store and keep serving without redis.
func CacheGetJSON(ctx context.Context, key string, out any) bool {
	rd := GetRedisClient()
	if rd == nil {
		return false
	}
	val, err := rd.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[redis] Error reading key %s: %s\n", key, err.Error())
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		log.Printf("[redis] Error decoding cached value for %s: %s\n", key, err.Error())
		return false
	}
	return true
}

// CacheSetJSON stores a value best-effort with the given TTL.
func CacheSetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	body, err := json.Marshal(value)
	if err != nil {
		log.Printf("[redis] Error encoding value for %s: %s\n", key, err.Error())
		return
	}
	if err := rd.Set(ctx, key, string(body), ttl).Err(); err != nil {
		log.Printf("[redis] Error writing key %s: %s\n", key, err.Error())
	}
}
