package config

import (
	"brand_site/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	Prizes() []model.Prize
	ExtraTurns() (min, max int)
}

type HTTPConfig interface {
	Address() string
	AllowedOrigins() []string
	ShutdownTimeout() time.Duration
	SecureCookies() bool
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type RedisConfig interface {
	Enabled() bool
	Address() string
	Password() string
	DB() int
}

type RateLimitConfig interface {
	Requests() int
	Window() time.Duration
}

type LogConfig interface {
	Level() string
	Pretty() bool
}
