// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pollsite/pollsite/cliparse"
	"github.com/pollsite/pollsite/middleware"
	"github.com/pollsite/pollsite/models"
	"github.com/pollsite/pollsite/store"
)

// ResultsHandler serves the public read path. Every endpoint evaluates
// visibility against a single wall-clock instant taken at the top of
// the request.
type ResultsHandler struct {
	store *store.QuestionStore
	cfg   cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: store.NewQuestionStore(db), cfg: cfg}
}

// ListQuestions handles GET /questions
// Returns visible questions, most recently published first.
func (h *ResultsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	questions, err := h.store.ListVisible(now)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := []models.QuestionSummary{}
	for _, q := range questions {
		summaries = append(summaries, models.NewQuestionSummary(q, now))
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{
		Questions: summaries,
	})
}

// GetQuestion handles GET /questions/{id}
// Returns the question and its choices without vote counts. Absent,
// unpublished, and choice-less questions all 404 identically.
func (h *ResultsHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	now := time.Now().UTC()

	q, err := h.store.GetVisible(questionID, now)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := h.store.ListChoices(q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options := []models.ChoiceOption{}
	for _, c := range choices {
		options = append(options, models.ChoiceOption{ID: c.ID, ChoiceText: c.ChoiceText})
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		Question: models.NewQuestionSummary(q, now),
		Choices:  options,
	})
}

// GetResults handles GET /questions/{id}/results
// Returns the question with per-choice vote counts.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	now := time.Now().UTC()

	q, err := h.store.GetVisible(questionID, now)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp, err := buildResults(h.store, q, now)
	if err != nil {
		slog.Error("failed to build results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// buildResults assembles the results payload for a question already
// resolved through the visibility filter. Shared with the vote handler.
func buildResults(s *store.QuestionStore, q models.Question, now time.Time) (models.QuestionResultsResponse, error) {
	choices, err := s.ListChoices(q.ID)
	if err != nil {
		return models.QuestionResultsResponse{}, err
	}

	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	return models.QuestionResultsResponse{
		Question:   models.NewQuestionSummary(q, now),
		Choices:    choices,
		TotalVotes: total,
	}, nil
}
