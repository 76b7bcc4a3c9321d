package config

import (
	"strconv"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the shared Redis client used for rate limiting.
// When REDIS_ADDR is unset the client stays nil and rate limiting is skipped.
func InitRedis() {
	config, err := LoadConfig()
	if err != nil || config.RedisAddr == "" {
		return
	}

	db := 0
	if config.RedisDB != "" {
		if n, err := strconv.Atoi(config.RedisDB); err == nil {
			db = n
		}
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr: config.RedisAddr,
		DB:   db,
	})
}
