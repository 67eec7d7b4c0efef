package cache

import "time"

type Backend string

const (
	BackendNone   Backend = "none"
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

type Config struct {
	Backend  Backend
	TTL      time.Duration
	RedisURL string
}
