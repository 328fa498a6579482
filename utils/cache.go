// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"salonbook/config"
)

var (
	// CacheClient is the generic cache client (catalog lookups).
	CacheClient *redis.Client
	// DraftCacheClient is the dedicated client for booking draft sessions.
	DraftCacheClient *redis.Client
	// BookingsCacheClient is the dedicated client for the confirmed booking store.
	BookingsCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db=%d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
	DraftCacheClient = newClient(config.AppConfig.RedisDraftDB)
	BookingsCacheClient = newClient(config.AppConfig.RedisBookingsDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetDraftCacheClient returns the Redis client holding booking draft sessions.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newClient(config.AppConfig.RedisDraftDB)
	}
	return DraftCacheClient
}

// GetBookingsCacheClient returns the Redis client holding confirmed bookings.
func GetBookingsCacheClient() *redis.Client {
	if BookingsCacheClient == nil {
		BookingsCacheClient = newClient(config.AppConfig.RedisBookingsDB)
	}
	return BookingsCacheClient
}
