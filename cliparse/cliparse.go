package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = 3318
	DefaultMaxResults = 5
)

type Config struct {
	Port             int
	DatabaseURL      string // empty runs fully in memory
	DatabaseType     string
	SlugSalt         string
	YouTubeAPIKey    string // empty disables /search
	SearchMaxResults int
	LogLevel         string
	LogFormat        string
	EnvFile          string
}

// StoreEnabled reports whether a backing database was configured
func (c Config) StoreEnabled() bool {
	return c.DatabaseURL != ""
}

// SearchEnabled reports whether YouTube lookups are available
func (c Config) SearchEnabled() bool {
	return c.YouTubeAPIKey != ""
}

// ParseFlags reads flags, then the .env file, then the environment.
// Flags win over the environment; the .env file never overrides variables
// that are already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fset := flag.NewFlagSet("song-wishlist", flag.ContinueOnError)

	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (optional, enables the backing store)")
	fset.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fset.StringVar(&cfg.EnvFile, "env", ".env", "Path to a .env file")
	fset.IntVar(&cfg.SearchMaxResults, "max-results", 0, "YouTube results per search")
	fset.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fset.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fset.StringVar(&cfg.SlugSalt, "slug-salt", "", "Share slug salt (prefer env)")
	fset.StringVar(&cfg.YouTubeAPIKey, "youtube-key", "", "YouTube Data API key (prefer env)")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", "sqlite")
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.SearchMaxResults == 0 {
		n, err := envInt("SEARCH_MAX_RESULTS", DefaultMaxResults)
		if err != nil {
			return Config{}, err
		}
		cfg.SearchMaxResults = n
	}
	if cfg.SearchMaxResults < 1 || cfg.SearchMaxResults > 50 {
		return Config{}, errors.New("search max results must be between 1 and 50")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "text")
	}

	if cfg.YouTubeAPIKey == "" {
		cfg.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	}

	// Secrets - MUST be provided
	if cfg.SlugSalt == "" {
		cfg.SlugSalt = os.Getenv("SLUG_SALT")
	}
	if cfg.SlugSalt == "" {
		return Config{}, errors.New("SLUG_SALT required")
	}

	return cfg, nil
}

// LoadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
