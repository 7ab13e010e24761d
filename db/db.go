// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database backends.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens a connection for the configured backend. Both drivers
// accept the $N placeholder syntax used throughout the store, so the
// rest of the code never branches on the backend.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite:
		return sql.Open("sqlite", url)
	case TypePostgres:
		return sql.Open("postgres", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q (want %q or %q)", dbType, TypeSQLite, TypePostgres)
	}
}
