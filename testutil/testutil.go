// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pollsite/pollsite/cliparse"
	"github.com/pollsite/pollsite/db"
	"github.com/pollsite/pollsite/models"
	"github.com/pollsite/pollsite/store"
)

// TestAdminToken is the admin token used by test configurations.
const TestAdminToken = "test-admin-token"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each call gets its own uniquely named database, so tests
// never see each other's rows.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := db.Open(db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory database lives only while a connection holds it open.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file::memory:",
		AdminToken:   TestAdminToken,
	}
}

// CreateTestQuestion creates a question published the given number of
// days offset from now (negative for the past, positive for questions
// that have yet to be published), with one choice per label. Pass no
// labels to create a choice-less question.
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int, choiceLabels ...string) models.Question {
	t.Helper()

	s := store.NewQuestionStore(conn)
	now := time.Now().UTC()
	pubDate := now.Add(time.Duration(days) * 24 * time.Hour)

	q, err := s.CreateQuestion(text, pubDate, now)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	for _, label := range choiceLabels {
		if _, err := s.AddChoice(q.ID, label); err != nil {
			t.Fatalf("Failed to create test choice: %v", err)
		}
	}

	return q
}

// AddTestChoice adds a choice to a question and returns it
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, label string) models.Choice {
	t.Helper()

	c, err := store.NewQuestionStore(conn).AddChoice(questionID, label)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
