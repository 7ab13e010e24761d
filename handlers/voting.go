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

type VotingHandler struct {
	store *store.QuestionStore
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store.NewQuestionStore(db), cfg: cfg}
}

// Vote handles POST /questions/{id}/vote
// Increments the chosen choice's counter and returns the updated
// results. The question must be visible; a missing or foreign choice
// is the voter's error, not a disclosure concern, so it gets a 400.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
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

	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "You didn't select a choice")
		return
	}

	err = h.store.Vote(q.ID, req.ChoiceID, now)
	if errors.Is(err, store.ErrNoSuchChoice) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "You didn't select a choice")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded",
		"question_id", q.ID,
		"choice_id", req.ChoiceID,
		"remote", middleware.GetClientIP(r),
	)

	resp, err := buildResults(h.store, q, now)
	if err != nil {
		slog.Error("failed to build results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
