// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort        = 3318
	DefaultSQLiteURL   = "file:ranked-pick.db"
	DefaultEnvFilePath = ".env"
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	AdminKeySalt     string
	ElectionSlugSalt string
	EnvFile          string
	LogJSON          bool
}

// envConfig mirrors Config for values that may come from the environment.
type envConfig struct {
	Port             int    `env:"PORT"`
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseType     string `env:"DATABASE_TYPE"`
	AdminKeySalt     string `env:"ADMIN_KEY_SALT"`
	ElectionSlugSalt string `env:"ELECTION_SLUG_SALT"`
	LogJSON          bool   `env:"LOG_JSON"`
}

// ParseFlags parses CLI flags, then fills anything left unset from the
// environment (including the .env file) and defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ranked-pick serve", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFilePath, "Path to a .env file")
	fs.BoolVar(&cfg.LogJSON, "log-json", false, "Print logs in JSON format")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.ElectionSlugSalt, "slug-salt", "", "Election slug salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		cfg.Port = envCfg.Port
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envCfg.DatabaseType
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSQLite
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = envCfg.DatabaseURL
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	cfg.LogJSON = cfg.LogJSON || envCfg.LogJSON

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = envCfg.AdminKeySalt
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if cfg.ElectionSlugSalt == "" {
		cfg.ElectionSlugSalt = envCfg.ElectionSlugSalt
	}
	if cfg.ElectionSlugSalt == "" {
		return Config{}, errors.New("ELECTION_SLUG_SALT required")
	}

	return cfg, nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
