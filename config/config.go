package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Port       string        `yaml:"port" validate:"required,numeric"`
	APIBaseURL string        `yaml:"api_base_url" validate:"required,url"`
	APITimeout time.Duration `yaml:"api_timeout" validate:"gt=0"`

	SessionDriver          string        `yaml:"session_driver" validate:"oneof=postgres sqlite redis memory"`
	DBURL                  string        `yaml:"db_url" validate:"required_if=SessionDriver postgres"`
	RedisAddr              string        `yaml:"redis_addr" validate:"required_if=SessionDriver redis"`
	SessionSecret          string        `yaml:"session_secret" validate:"required,min=16"`
	SessionCookie          string        `yaml:"session_cookie" validate:"required"`
	SessionTTL             time.Duration `yaml:"session_ttl" validate:"gt=0"`
	SessionRevalidateAfter time.Duration `yaml:"session_revalidate_after" validate:"gt=0"`
	CookieSecure           bool          `yaml:"cookie_secure"`

	CORSOrigins   []string `yaml:"cors_origins"`
	SweepSchedule string   `yaml:"sweep_schedule" validate:"required"`

	LogLevel  string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=console json"`
	GinMode   string `yaml:"gin_mode" validate:"oneof=debug release test"`
}

func defaults() Config {
	return Config{
		Port:                   "8080",
		APITimeout:             15 * time.Second,
		SessionDriver:          DriverSQLite,
		DBURL:                  "salonpro-web.db",
		SessionCookie:          "salonpro_session",
		SessionTTL:             24 * time.Hour,
		SessionRevalidateAfter: 5 * time.Minute,
		CORSOrigins:            []string{"http://localhost:3000"},
		SweepSchedule:          "@every 10m",
		LogLevel:               "info",
		LogFormat:              "console",
		GinMode:                "release",
	}
}

// Load reads .env (when present), the optional YAML file named by CONFIG_FILE
// and the environment, in that order of precedence from lowest to highest.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = d
	}

	str("PORT", &c.Port)
	str("API_BASE_URL", &c.APIBaseURL)
	dur("API_TIMEOUT", &c.APITimeout)
	str("SESSION_DRIVER", &c.SessionDriver)
	str("DB_URL", &c.DBURL)
	str("REDIS_ADDR", &c.RedisAddr)
	str("SESSION_SECRET", &c.SessionSecret)
	str("SESSION_COOKIE", &c.SessionCookie)
	dur("SESSION_TTL", &c.SessionTTL)
	dur("SESSION_REVALIDATE_AFTER", &c.SessionRevalidateAfter)
	str("SWEEP_SCHEDULE", &c.SweepSchedule)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("GIN_MODE", &c.GinMode)

	if v, ok := os.LookupEnv("COOKIE_SECURE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("COOKIE_SECURE: %w", err))
		} else {
			c.CookieSecure = b
		}
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok && v != "" {
		c.CORSOrigins = splitList(v)
	}
	return errors.Join(errs...)
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
