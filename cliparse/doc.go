// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: backing store connection string (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SlugSalt: Secret for share slug generation (required)
  - YouTubeAPIKey: YouTube Data API key (optional, enables /search)
  - SearchMaxResults: results per search, 1-50 (default: 5)
  - LogLevel, LogFormat: slog level and text/json handler

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-env          .env file path (default: .env)
	-max-results  Results per search
	-log-level    debug, info, warn, error
	-log-format   text or json
	-slug-salt    Share slug salt
	-youtube-key  YouTube Data API key

# Environment Variables

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	SEARCH_MAX_RESULTS → -max-results
	LOG_LEVEL          → -log-level
	LOG_FORMAT         → -log-format
	SLUG_SALT          → -slug-salt
	YOUTUBE_API_KEY    → -youtube-key

CLI flags take precedence over environment variables. The .env file is
loaded with godotenv and never overrides variables already set.

# Validation

ParseFlags returns an error if SLUG_SALT is missing, the port or result
count is out of range, or the database type is unknown.
*/
package cliparse
