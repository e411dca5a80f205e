package config

import (
	"context"
	"net"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const defaultPort = "8080"

type ServerConfig struct {
	ListenHost      string        `env:"LISTEN_HOST, default=0.0.0.0"`
	Port            string        `env:"PORT"`
	Dev             bool          `env:"DEV, default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

type ClientConfig struct {
	BaseURL      string        `env:"BASE_URL, default=http://localhost:8080"`
	Timeout      time.Duration `env:"TIMEOUT, default=5s"`
	WaitAttempts uint          `env:"WAIT_ATTEMPTS, default=10"`
	WaitDelay    time.Duration `env:"WAIT_DELAY, default=1s"`
}

type Config struct {
	Server ServerConfig `env:",prefix=DEMO_"`
	Client ClientConfig `env:",prefix=DEMO_CLIENT_"`

	// PORT is what container platforms usually set
	Port string `env:"PORT"`
}

// ListenAddr prefers DEMO_PORT, then PORT, then 8080.
func (c *Config) ListenAddr() string {
	port := c.Server.Port
	if port == "" {
		port = c.Port
	}
	if port == "" {
		port = defaultPort
	}
	return net.JoinHostPort(c.Server.ListenHost, port)
}

func LoadConfig(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
