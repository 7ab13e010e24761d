// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollsite/pollsite/models"
	"github.com/pollsite/pollsite/store"
	"github.com/pollsite/pollsite/testutil"
)

func TestVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	q := testutil.CreateTestQuestion(t, db, "Past question.", -1, "First", "Second")
	choices, err := store.NewQuestionStore(db).ListChoices(q.ID)
	if err != nil {
		t.Fatalf("ListChoices failed: %v", err)
	}
	target := choices[0]

	tests := []struct {
		name           string
		questionID     string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.QuestionResultsResponse)
	}{
		{
			name:           "valid vote",
			questionID:     q.ID,
			requestBody:    models.VoteRequest{ChoiceID: target.ID},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.QuestionResultsResponse) {
				if resp.TotalVotes != 1 {
					t.Errorf("Expected 1 total vote, got %d", resp.TotalVotes)
				}
				for _, c := range resp.Choices {
					want := 0
					if c.ID == target.ID {
						want = 1
					}
					if c.Votes != want {
						t.Errorf("Choice %s: expected %d votes, got %d", c.ChoiceText, want, c.Votes)
					}
				}
			},
		},
		{
			name:           "missing choice selection",
			questionID:     q.ID,
			requestBody:    models.VoteRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown choice",
			questionID:     q.ID,
			requestBody:    models.VoteRequest{ChoiceID: "no-such-choice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "question not found",
			questionID:     "nonexistent",
			requestBody:    models.VoteRequest{ChoiceID: target.ID},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid JSON",
			questionID:     q.ID,
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A bare string marshals to a JSON string, which fails to
			// decode into VoteRequest - good enough for the bad-JSON case.
			req := testutil.MakeRequest("POST", "/questions/"+tt.questionID+"/vote", tt.requestBody, nil)
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.QuestionResultsResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestVoteOnFutureQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Future question.", 5, "Choice")
	choices, err := store.NewQuestionStore(db).ListChoices(q.ID)
	if err != nil {
		t.Fatalf("ListChoices failed: %v", err)
	}

	req := testutil.MakeRequest("POST", "/questions/"+q.ID+"/vote",
		models.VoteRequest{ChoiceID: choices[0].ID}, nil)
	req.SetPathValue("id", q.ID)
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	// Unpublished questions are invisible to voters too
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestVoteAccumulates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Past question.", -1, "Only choice")
	choices, err := store.NewQuestionStore(db).ListChoices(q.ID)
	if err != nil {
		t.Fatalf("ListChoices failed: %v", err)
	}

	var last models.QuestionResultsResponse
	for i := 0; i < 5; i++ {
		req := testutil.MakeRequest("POST", "/questions/"+q.ID+"/vote",
			models.VoteRequest{ChoiceID: choices[0].ID}, nil)
		req.SetPathValue("id", q.ID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertJSON(t, w, &last)
	}

	if last.TotalVotes != 5 {
		t.Errorf("Expected 5 votes after 5 submissions, got %d", last.TotalVotes)
	}
}
