package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
	"github.com/Vovarama1992/support-ai-bridge/internal/core"
	"github.com/Vovarama1992/support-ai-bridge/internal/support"
)

// Server holds process-level settings.
type Server struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	DatabaseURL    string        `envconfig:"DATABASE_URL" required:"true"`
	Env            string        `envconfig:"APP_ENV" default:"development"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	DBPingTimeout  time.Duration `envconfig:"DB_PING_TIMEOUT" default:"5s"`
}

// Environment returns the parsed APP_ENV value.
func (s Server) Environment() core.Environment {
	return core.ParseEnvironment(s.Env)
}

// Origins splits CORS_ALLOWED_ORIGINS into a list.
func (s Server) Origins() []string {
	var out []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// AppConfig is built once at startup and passed down by value.
type AppConfig struct {
	Server  Server
	AI      ai.Config
	Support support.Config
}

// Load reads the process environment. godotenv is expected to have run already.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg.Server); err != nil {
		return cfg, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.AI); err != nil {
		return cfg, fmt.Errorf("ai config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Support); err != nil {
		return cfg, fmt.Errorf("support config: %w", err)
	}

	cfg.Server.Port = strings.TrimSpace(cfg.Server.Port)
	cfg.Server.DatabaseURL = strings.TrimSpace(cfg.Server.DatabaseURL)
	if cfg.Server.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is not set")
	}
	cfg.AI = cfg.AI.Normalize()
	cfg.Support = cfg.Support.Normalize()

	return cfg, nil
}
