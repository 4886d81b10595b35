package config

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis is the optional cache client, nil when REDIS_ADDR is not configured.
var Redis *redis.Client

// InitRedis connects the suggestion cache. The cache is best effort; a
// missing or unreachable redis leaves the client nil and callers fall through
// to the database.
func InitRedis() {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     getEnv("REDIS_PASSWORD", ""),
		DB:           0,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s, suggestion cache disabled: %v", addr, err)
		return
	}

	Redis = rdb
	log.Printf("Redis connected: %s", addr)
}
