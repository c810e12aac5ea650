// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// noEnvFile keeps a stray .env in the package directory out of the tests.
const noEnvFile = "-env-file="

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("ELECTION_SLUG_SALT", "test-slug")

	cfg, err := ParseFlags([]string{noEnvFile})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database URL %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{noEnvFile, "-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{noEnvFile, "-admin-salt", "s1", "-slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != DefaultSQLiteURL {
		t.Errorf("expected default sqlite URL, got %s", cfg.DatabaseURL)
	}
	if cfg.LogJSON {
		t.Error("expected text logs by default")
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "ADMIN_KEY_SALT=from-file\nELECTION_SLUG_SALT=slug-from-file\nPORT=7000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Process environment wins over the file
	t.Setenv("PORT", "7100")
	// Registered so t.Setenv restores the variables the file sets
	t.Setenv("ADMIN_KEY_SALT", "")
	t.Setenv("ELECTION_SLUG_SALT", "")
	os.Unsetenv("ADMIN_KEY_SALT")
	os.Unsetenv("ELECTION_SLUG_SALT")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AdminKeySalt != "from-file" {
		t.Errorf("expected salt from env file, got %q", cfg.AdminKeySalt)
	}
	if cfg.ElectionSlugSalt != "slug-from-file" {
		t.Errorf("expected slug salt from env file, got %q", cfg.ElectionSlugSalt)
	}
	if cfg.Port != 7100 {
		t.Errorf("process env should win over env file: expected 7100, got %d", cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing admin salt",
			args: []string{noEnvFile, "-slug-salt", "s2"},
		},
		{
			name: "missing slug salt",
			args: []string{noEnvFile, "-admin-salt", "s1"},
		},
		{
			name: "invalid port env",
			env:  map[string]string{"PORT": "not-a-port"},
			args: []string{noEnvFile, "-admin-salt", "s1", "-slug-salt", "s2"},
		},
		{
			name: "unknown database type",
			args: []string{noEnvFile, "-t", "mysql", "-admin-salt", "s1", "-slug-salt", "s2"},
		},
		{
			name: "postgres without url",
			args: []string{noEnvFile, "-t", "postgres", "-admin-salt", "s1", "-slug-salt", "s2"},
		},
		{
			name: "unknown flag",
			args: []string{"-nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
