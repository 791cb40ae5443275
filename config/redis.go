package config

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB is the shared redis client used for catalog caching. Nil when
// REDIS_ADDR is not configured; callers must treat caching as optional.
var RDB *redis.Client

// InitRedis initializes the redis client if REDIS_ADDR is set
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
