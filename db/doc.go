// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package db handles driver selection and database schema creation.

# Backends

Open picks the driver from the configured database type:

	conn, err := db.Open(db.TypeSQLite, "file:pollsite.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite, no cgo) is the default and is also what the
test suite runs on, in memory. PostgreSQL (lib/pq) is for deployments.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	question 1──* choice

  - question: prompt text plus publication and creation timestamps
  - choice: selectable option with a non-negative vote counter

# Indexes

  - question.pub_date (the visibility filter orders and compares on it)
  - choice.question_id (the has-choices existence check)
*/
package db
