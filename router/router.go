// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pollsite/pollsite/cliparse"
	"github.com/pollsite/pollsite/handlers"
	"github.com/pollsite/pollsite/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public read path
	mux.HandleFunc("GET /questions", middleware.WithLogging(resultsHandler.ListQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(resultsHandler.GetQuestion))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Voting
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(votingHandler.Vote))

	// Question management (admin operations)
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(questionHandler.AddChoice))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollsite API v1"))
	})

	return mux
}
