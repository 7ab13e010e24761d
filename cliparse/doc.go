// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: Connection string (defaults to file:pollsite.db for sqlite)
  - AdminToken: Secret for the X-Admin-Token header (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin-token  Admin API token

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_TOKEN   → -admin-token

CLI flags take precedence over environment variables. main loads a
.env file via godotenv before parsing, so a checked-out dev tree can
keep its settings in .env.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_TOKEN must be provided
  - DATABASE_URL must be provided when the type is postgres
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
