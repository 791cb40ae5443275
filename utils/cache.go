package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vaporhouse-br/VaporHouse/config"
)

const catalogCacheTTL = 5 * time.Minute

// CacheGetJSON fetches a cached value into dest. Returns false on a miss,
// on any redis error, or when redis is not configured.
func CacheGetJSON(ctx context.Context, key string, dest interface{}) bool {
	if config.RDB == nil {
		return false
	}

	data, err := config.RDB.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		LogError("Cache: failed to decode key %s: %v", key, err)
		return false
	}
	return true
}

// CacheSetJSON stores a value under key with the catalog TTL. Best effort.
func CacheSetJSON(ctx context.Context, key string, value interface{}) {
	if config.RDB == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		LogError("Cache: failed to encode key %s: %v", key, err)
		return
	}
	if err := config.RDB.Set(ctx, key, data, catalogCacheTTL).Err(); err != nil {
		LogError("Cache: failed to set key %s: %v", key, err)
	}
}

// InvalidateCatalogCache drops all cached catalog listings. Called after any
// admin write to products, categories or banners.
func InvalidateCatalogCache(ctx context.Context) {
	if config.RDB == nil {
		return
	}

	iter := config.RDB.Scan(ctx, 0, "catalog:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := config.RDB.Del(ctx, iter.Val()).Err(); err != nil {
			LogError("Cache: failed to delete key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		LogError("Cache: scan failed during invalidation: %v", err)
	}
}
