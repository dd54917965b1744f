package env

import (
	"brand_site/internal/config"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

const (
	httpHostEnvName            = "HTTP_HOST"
	httpPortEnvName            = "HTTP_PORT"
	corsAllowedOriginsEnvName  = "CORS_ALLOWED_ORIGINS"
	shutdownTimeoutEnvName     = "HTTP_SHUTDOWN_TIMEOUT"
	defaultHTTPPort            = "8080"
	defaultHTTPShutdownTimeout = 15 * time.Second
)

type httpConfig struct {
	host            string
	port            string
	allowedOrigins  []string
	shutdownTimeout time.Duration
	secureCookies   bool
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}

	origins := []string{"*"}
	if raw := os.Getenv(corsAllowedOriginsEnvName); len(raw) > 0 {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	timeout := defaultHTTPShutdownTimeout
	if raw := os.Getenv(shutdownTimeoutEnvName); len(raw) > 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid http shutdown timeout: %w", err)
		}
		timeout = parsed
	}

	return &httpConfig{
		host:            os.Getenv(httpHostEnvName),
		port:            port,
		allowedOrigins:  origins,
		shutdownTimeout: timeout,
		secureCookies:   os.Getenv(appEnvEnvName) != "local",
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.allowedOrigins
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.shutdownTimeout
}

// SecureCookies - выставлять ли Secure у cookies. Локально работаем по http
func (cfg *httpConfig) SecureCookies() bool {
	return cfg.secureCookies
}
