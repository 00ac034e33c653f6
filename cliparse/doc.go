// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: SQLite path or PostgreSQL connection string
    (default for sqlite: ballot-box.db, required for postgres)
  - AdminKey: Secret required to create elections (required)
  - SessionTTL: Idle time before a session and its ballot are dropped (default: 2h)
  - FeedInterval: Status feed recheck period (default: 30s)
  - LogLevel, LogFormat: slog settings (default: info, auto)
  - Seed: Insert the default elections into an empty database (default: true)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-env            .env file to load (default: .env)
	-admin-key      Admin key
	-session-ttl    Session idle timeout
	-feed-interval  Status feed period
	-log-level      Log level
	-log-format     Log format
	-no-seed        Skip default elections

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY      → -admin-key
	SESSION_TTL    → -session-ttl
	FEED_INTERVAL  → -feed-interval
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format
	SEED_ELECTIONS → inverse of -no-seed

Variables in the .env file are loaded with godotenv and never override
variables already present in the process environment. A missing .env file
is not an error.
*/
package cliparse
