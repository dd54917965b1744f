package env

import (
	"brand_site/internal/config"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
	rateLimitReqEnvName  = "RATE_LIMIT_REQUESTS"
	rateLimitWinEnvName  = "RATE_LIMIT_WINDOW"
	defaultRateLimitReq  = 10
	defaultRateLimitWin  = time.Minute
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

// NewRedisConfig - пустой REDIS_ADDR не ошибка, ограничение частоты запросов просто выключено
func NewRedisConfig() (config.RedisConfig, error) {
	db := 0
	if raw := os.Getenv(redisDBEnvName); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		db = parsed
	}

	return &redisConfig{
		addr:     os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Enabled() bool    { return cfg.addr != "" }
func (cfg *redisConfig) Address() string  { return cfg.addr }
func (cfg *redisConfig) Password() string { return cfg.password }
func (cfg *redisConfig) DB() int          { return cfg.db }

type rateLimitConfig struct {
	requests int
	window   time.Duration
}

func NewRateLimitConfig() (config.RateLimitConfig, error) {
	cfg := &rateLimitConfig{
		requests: defaultRateLimitReq,
		window:   defaultRateLimitWin,
	}

	if raw := os.Getenv(rateLimitReqEnvName); len(raw) > 0 {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid rate limit requests: %q", raw)
		}
		cfg.requests = n
	}

	if raw := os.Getenv(rateLimitWinEnvName); len(raw) > 0 {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid rate limit window: %q", raw)
		}
		cfg.window = d
	}

	return cfg, nil
}

func (cfg *rateLimitConfig) Requests() int         { return cfg.requests }
func (cfg *rateLimitConfig) Window() time.Duration { return cfg.window }
