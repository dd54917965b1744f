package env

import (
	"brand_site/internal/config"
	"os"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	appEnvEnvName   = "APP_ENV"
)

type logConfig struct {
	level  string
	pretty bool
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if level == "" {
		level = "info"
	}

	return &logConfig{
		level:  level,
		pretty: os.Getenv(appEnvEnvName) == "local",
	}
}

func (cfg *logConfig) Level() string { return cfg.level }
func (cfg *logConfig) Pretty() bool  { return cfg.pretty }
