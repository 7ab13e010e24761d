// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package router defines HTTP routes for the pollsite API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public read path:

	GET /questions               - Visible questions, newest first
	GET /questions/{id}          - Question detail with choices
	GET /questions/{id}/results  - Per-choice vote counts

Voting (public):

	POST /questions/{id}/vote - Record a vote for a choice

Question management (admin, requires X-Admin-Token):

	POST   /questions              - Create question
	POST   /questions/{id}/choices - Add choice
	DELETE /questions/{id}         - Delete question

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
