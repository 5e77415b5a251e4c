package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

const (
	SessionStoreSQLite = "sqlite"
	SessionStoreRedis  = "redis"
)

type Config struct {
	AppHost                string        `toml:"app_host"`
	AppPort                string        `toml:"app_port"`
	APIBaseURL             string        `toml:"api_base_url"`
	APITimeout             time.Duration `toml:"api_timeout"`
	RateLimit              int           `toml:"rate_limit_per_minute"`
	SessionStore           string        `toml:"session_store"`
	SessionTTL             time.Duration `toml:"session_ttl"`
	SessionSweepInterval   time.Duration `toml:"session_sweep_interval"`
	SessionCookieSecure    bool          `toml:"session_cookie_secure"`
	DatabaseDSN            string        `toml:"database_dsn"`
	RedisHost              string        `toml:"redis_host"`
	RedisPort              string        `toml:"redis_port"`
	RedisSessionPrefix     string        `toml:"redis_session_prefix"`
	ShutdownTimeoutSeconds int           `toml:"shutdown_timeout_seconds"`
	LogLevel               string        `toml:"log_level"`
	LogFormat              string        `toml:"log_format"`
}

func Defaults() Config {
	return Config{
		AppHost:                "127.0.0.1",
		AppPort:                "8080",
		APIBaseURL:             "http://127.0.0.1:5000/api",
		APITimeout:             10 * time.Second,
		RateLimit:              60,
		SessionStore:           SessionStoreSQLite,
		SessionTTL:             24 * time.Hour,
		SessionSweepInterval:   10 * time.Minute,
		DatabaseDSN:            "sessions.db",
		RedisHost:              "127.0.0.1",
		RedisPort:              "6379",
		RedisSessionPrefix:     "taskboard:session:",
		ShutdownTimeoutSeconds: 20,
		LogLevel:               "info",
		LogFormat:              "text",
	}
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Parse builds the config from defaults, then the optional TOML file at
// path, then the environment.
func Parse(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	env := &envReader{}
	cfg = Config{
		AppHost:                env.str("APP_HOST", cfg.AppHost),
		AppPort:                env.str("APP_PORT", cfg.AppPort),
		APIBaseURL:             env.str("API_BASE_URL", cfg.APIBaseURL),
		APITimeout:             env.duration("API_TIMEOUT", cfg.APITimeout),
		RateLimit:              env.int("RATE_LIMIT_PER_MINUTE", cfg.RateLimit),
		SessionStore:           env.str("SESSION_STORE", cfg.SessionStore),
		SessionTTL:             env.duration("SESSION_TTL", cfg.SessionTTL),
		SessionSweepInterval:   env.duration("SESSION_SWEEP_INTERVAL", cfg.SessionSweepInterval),
		SessionCookieSecure:    env.bool("SESSION_COOKIE_SECURE", cfg.SessionCookieSecure),
		DatabaseDSN:            env.str("DATABASE_DSN", cfg.DatabaseDSN),
		RedisHost:              env.str("REDIS_HOST", cfg.RedisHost),
		RedisPort:              env.str("REDIS_PORT", cfg.RedisPort),
		RedisSessionPrefix:     env.str("REDIS_SESSION_PREFIX", cfg.RedisSessionPrefix),
		ShutdownTimeoutSeconds: env.int("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeoutSeconds),
		LogLevel:               env.str("LOG_LEVEL", cfg.LogLevel),
		LogFormat:              env.str("LOG_FORMAT", cfg.LogFormat),
	}
	if env.err != nil {
		return Config{}, env.err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is Parse for startup: invalid config is fatal.
func Load(path string) Config {
	cfg, err := Parse(path)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	return cfg
}

func validate(cfg Config) error {
	var errs []error
	if cfg.AppHost == "" || cfg.AppPort == "" {
		errs = append(errs, errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1:8080)"))
	}
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, errors.New("API_BASE_URL must be an absolute URL"))
	}
	if cfg.APITimeout <= 0 {
		errs = append(errs, errors.New("API_TIMEOUT must be greater than 0"))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	switch cfg.SessionStore {
	case SessionStoreSQLite:
		if cfg.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
		}
		if cfg.SessionSweepInterval <= 0 {
			errs = append(errs, errors.New("SESSION_SWEEP_INTERVAL must be greater than 0"))
		}
	case SessionStoreRedis:
		if cfg.RedisHost == "" || cfg.RedisPort == "" {
			errs = append(errs, errors.New("REDIS_HOST and REDIS_PORT must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be %q or %q", SessionStoreSQLite, SessionStoreRedis))
	}
	if cfg.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be greater than 0"))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	return errors.Join(errs...)
}

// envReader reads typed env vars and keeps the first parse failure.
type envReader struct {
	err error
}

func (r *envReader) str(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func (r *envReader) int(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		r.fail(fmt.Errorf("invalid integer value for %s", key))
		return defaultVal
	}
	return i
}

func (r *envReader) duration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(fmt.Errorf("invalid duration value for %s", key))
		return defaultVal
	}
	return d
}

func (r *envReader) bool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(fmt.Errorf("invalid boolean value for %s", key))
		return defaultVal
	}
	return b
}

func (r *envReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
