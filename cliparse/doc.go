// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[2:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:ranked-pick.db)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - ElectionSlugSalt: Secret for share slug generation (required)
  - LogJSON: JSON log output

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-env-file     .env file to load (default: .env)
	-log-json     JSON logs
	-admin-salt   Admin key salt
	-slug-salt    Election slug salt

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	LOG_JSON           → -log-json
	ADMIN_KEY_SALT     → -admin-salt
	ELECTION_SLUG_SALT → -slug-salt

Variables are also read from the .env file. Values already present in the
process environment win over the file, and CLI flags win over both.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or out of range
  - the database type is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
  - ADMIN_KEY_SALT or ELECTION_SLUG_SALT is missing
*/
package cliparse
