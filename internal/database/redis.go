package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Titan0-08/Fitness-Web/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Session revocation and caching will be disabled.", err)
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// --- Session revocation ---
// Logout blacklists the token id until the token would have expired anyway.

func BlacklistToken(jti string, ttl time.Duration) error {
	if Redis == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return Redis.Set(Ctx, "session_blacklist:"+jti, "1", ttl).Err()
}

func IsTokenBlacklisted(jti string) bool {
	if Redis == nil || jti == "" {
		return false
	}
	exists, err := Redis.Exists(Ctx, "session_blacklist:"+jti).Result()
	if err != nil {
		// Redis down: fail open, sessions keep working without revocation
		return false
	}
	return exists > 0
}

// --- Caching ---
// Used for the public published-content lists only.

func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return fmt.Errorf("redis not configured")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return fmt.Errorf("redis not configured")
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func CacheInvalidate(pattern string) error {
	if Redis == nil {
		return nil
	}
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}
