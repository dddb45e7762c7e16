package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Authority modes
const (
	// AuthorityLocal applies commands in this process
	AuthorityLocal = "local"
	// AuthorityHost applies commands in this process and serves other bots over Redis
	AuthorityHost = "host"
	// AuthorityRemote sends commands over Redis to a host elsewhere
	AuthorityRemote = "remote"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	Combat    CombatConfig
	Telemetry TelemetryConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token string `env:"DISCORD_TOKEN,required"`
	AppID string `env:"DISCORD_APP_ID,required"`
	// Optional: for guild-specific commands
	GuildID string `env:"DISCORD_GUILD_ID"`
	// CombatLogChannelID receives damage and stance announcements when set
	CombatLogChannelID string `env:"DISCORD_COMBAT_LOG_CHANNEL_ID"`
	// GMRoleID grants the GM commands; server administrators always have them
	GMRoleID string `env:"DISCORD_GM_ROLE_ID"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is empty when running on in-memory storage
	URL     string `env:"REDIS_URL"`
	Channel string `env:"TOGARASHI_AUTHORITY_CHANNEL" envDefault:"togarashi:authority"`
}

// CombatConfig holds the rules and flow settings
type CombatConfig struct {
	FormulasFile string `env:"TOGARASHI_FORMULAS_FILE"`
	// ActorsFile is a YAML roster seeded into storage at startup
	ActorsFile    string        `env:"TOGARASHI_ACTORS_FILE"`
	Authority     string        `env:"TOGARASHI_AUTHORITY" envDefault:"local"`
	PollInterval  time.Duration `env:"TOGARASHI_TARGET_POLL_INTERVAL" envDefault:"100ms"`
	PromptTimeout time.Duration `env:"TOGARASHI_PROMPT_TIMEOUT" envDefault:"5m"`
}

// TelemetryConfig holds tracing settings
type TelemetryConfig struct {
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"togarashi-bot"`
	// Endpoint is the OTLP/HTTP collector; empty disables export
	Endpoint string `env:"TOGARASHI_OTEL_ENDPOINT"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Combat.Authority {
	case AuthorityLocal:
	case AuthorityHost, AuthorityRemote:
		if c.Redis.URL == "" {
			return fmt.Errorf("TOGARASHI_AUTHORITY=%s requires REDIS_URL", c.Combat.Authority)
		}
	default:
		return fmt.Errorf("unknown TOGARASHI_AUTHORITY %q", c.Combat.Authority)
	}

	if c.Combat.PollInterval <= 0 {
		return fmt.Errorf("TOGARASHI_TARGET_POLL_INTERVAL must be positive")
	}
	if c.Combat.PromptTimeout <= 0 {
		return fmt.Errorf("TOGARASHI_PROMPT_TIMEOUT must be positive")
	}

	return nil
}
