package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ballot-box/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKey     string
	SessionTTL   time.Duration
	FeedInterval time.Duration
	LogLevel     string
	LogFormat    string
	Seed         bool
}

// ParseFlags validates flags and fills the rest from the environment.
// Precedence: CLI flag, process env, .env file, default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string
	var noSeed bool

	fs := flag.NewFlagSet("ballot-box", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&envFile, "env", ".env", "Path to .env file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key for creating elections (prefer env)")

	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle time before a session is discarded")
	fs.DurationVar(&cfg.FeedInterval, "feed-interval", 0, "How often the status feed rechecks elections")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "text, json or auto")
	fs.BoolVar(&noSeed, "no-seed", false, "Do not insert the default elections")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv.Load never overrides variables already set in the process
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.SQLite
		}
	}
	if cfg.DatabaseType != db.SQLite && cfg.DatabaseType != db.Postgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == db.Postgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "ballot-box.db"
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	var err error
	if cfg.SessionTTL == 0 {
		if cfg.SessionTTL, err = durationEnv("SESSION_TTL", 2*time.Hour); err != nil {
			return Config{}, err
		}
	}
	if cfg.FeedInterval == 0 {
		if cfg.FeedInterval, err = durationEnv("FEED_INTERVAL", 30*time.Second); err != nil {
			return Config{}, err
		}
	}
	if cfg.FeedInterval <= 0 {
		return Config{}, errors.New("feed interval must be positive")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "auto")
	}

	cfg.Seed = !noSeed
	if v := os.Getenv("SEED_ELECTIONS"); v != "" && !noSeed {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.New("invalid SEED_ELECTIONS env variable")
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}
