package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultAdminEmail and DefaultAdminPassword are the demo credentials shown on
// the admin login screen. Production deployments must override the password
// with PADEL_ADMIN_PASSWORD_HASH.
const (
	DefaultAdminEmail    = "admin@padelcygnus.com"
	DefaultAdminPassword = "Admin123!"
)

// Config errors
var (
	ErrMissingCSRFKey      = errors.New("PADEL_CSRF_KEY is required in production")
	ErrInvalidCSRFKey      = errors.New("PADEL_CSRF_KEY must be 64 hex characters (32 bytes)")
	ErrMissingPasswordHash = errors.New("PADEL_ADMIN_PASSWORD_HASH is required in production")
	ErrInvalidEnv          = errors.New("PADEL_ENV must be one of: development, production")
	ErrInvalidLogLevel     = errors.New("PADEL_LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidChatTTL      = errors.New("PADEL_CHAT_TTL must be positive")
)

// Config holds every runtime setting for the server.
type Config struct {
	Addr     string `env:"PADEL_ADDR" envDefault:":8080"`
	Env      string `env:"PADEL_ENV" envDefault:"development"`
	LogLevel string `env:"PADEL_LOG_LEVEL" envDefault:"info"`
	DSN      string `env:"PADEL_DB_DSN" envDefault:":memory:"`

	AdminEmail        string `env:"PADEL_ADMIN_EMAIL" envDefault:"admin@padelcygnus.com"`
	AdminPassword     string `env:"PADEL_ADMIN_PASSWORD" envDefault:"Admin123!"`
	AdminPasswordHash string `env:"PADEL_ADMIN_PASSWORD_HASH"`

	CSRFKey        string        `env:"PADEL_CSRF_KEY"`
	TrustedOrigins []string      `env:"PADEL_TRUSTED_ORIGINS" envSeparator:"," envDefault:"localhost:8080,127.0.0.1:8080"`
	SessionTTL     time.Duration `env:"PADEL_SESSION_TTL" envDefault:"24h"`
	RateLimit      int           `env:"PADEL_RATE_LIMIT" envDefault:"10"`

	ChatReplyDelay time.Duration `env:"PADEL_CHAT_REPLY_DELAY" envDefault:"1s"`
	ChatTTL        time.Duration `env:"PADEL_CHAT_TTL" envDefault:"24h"`

	SlowRequestMs int `env:"PADEL_SLOW_REQUEST_MS" envDefault:"200"`
	SlowQueryMs   int `env:"PADEL_SLOW_QUERY_MS" envDefault:"50"`

	ResendKey    string `env:"PADEL_RESEND_KEY"`
	EmailFrom    string `env:"PADEL_EMAIL_FROM" envDefault:"Padel Cygnus <noreply@padelcygnus.com>"`
	ContactEmail string `env:"PADEL_CONTACT_EMAIL" envDefault:"info@padelcygnus.com"`

	StaticDir string `env:"PADEL_STATIC_DIR" envDefault:"static"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and validates the result.
// PRE: none
// POST: Returns a validated Config or the first validation error
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
// PRE: Config is populated
// POST: Returns nil if the config can start a server
func (c Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return ErrInvalidEnv
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return ErrInvalidLogLevel
	}
	if c.ChatTTL <= 0 {
		return ErrInvalidChatTTL
	}
	if c.CSRFKey != "" {
		if _, err := c.CSRFKeyBytes(); err != nil {
			return err
		}
	}
	if c.IsProduction() {
		if c.CSRFKey == "" {
			return ErrMissingCSRFKey
		}
		if c.AdminPasswordHash == "" {
			return ErrMissingPasswordHash
		}
	}
	return nil
}

// IsProduction reports whether the server runs with production hardening.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// CSRFKeyBytes decodes the hex CSRF key. An empty key yields nil.
func (c Config) CSRFKeyBytes() ([]byte, error) {
	if c.CSRFKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.CSRFKey)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidCSRFKey
	}
	return key, nil
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
