// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package main provides the entry point for the pollsite API server.

Pollsite is a small polls service: questions carry a publication date
and become publicly visible once that date has passed and at least one
choice is attached. Voters browse visible questions, cast votes, and
read per-choice results.

# Starting the Server

The server reads environment variables (optionally from a .env file)
or CLI flags:

	ADMIN_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 3324 -t sqlite -d "file:pollsite.db" -admin-token ...

# Configuration

Required settings:

  - ADMIN_TOKEN (-admin-token): Secret for the X-Admin-Token header

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:pollsite.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, results, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the recency rule
  - store: Visibility filter and lifecycle mutations
  - auth: Admin token validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
