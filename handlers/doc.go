// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package handlers contains HTTP request handlers for the pollsite API.

# Handler Types

Each handler is a struct built over the question store plus config:

  - QuestionHandler: administrative lifecycle (create, add choice, delete)
  - ResultsHandler: public read path (index, detail, results)
  - VotingHandler: vote submission

Handlers are created via constructor functions that accept *sql.DB and Config:

	resultsHandler := handlers.NewResultsHandler(db, cfg)

# Read Path

	GET /questions               → ListQuestions
	GET /questions/{id}          → GetQuestion (choices, no vote counts)
	GET /questions/{id}/results  → GetResults (choices with vote counts)

Each request resolves visibility against one wall-clock instant taken
at the top of the handler. A question that is absent, future-dated, or
choice-less produces the same 404, so callers cannot probe for
unpublished questions.

# Admin Operations

	POST   /questions               → CreateQuestion
	POST   /questions/{id}/choices  → AddChoice
	DELETE /questions/{id}          → DeleteQuestion

Admin operations require the X-Admin-Token header.

# Voting

	POST /questions/{id}/vote → Vote

The body names a choice_id; the handler increments its counter and
responds with the same payload as GetResults. An empty or unknown
choice_id is a 400 with a "didn't select a choice" message.
*/
package handlers
