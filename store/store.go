// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pollsite/pollsite/models"
)

var (
	// ErrNotFound is returned for questions that are absent, not yet
	// published, or have no choices. Callers cannot tell which, so an
	// unpublished question is indistinguishable from a missing one.
	ErrNotFound = errors.New("question not found")

	// ErrNoSuchChoice is returned by Vote when the choice does not
	// exist or belongs to a different question.
	ErrNoSuchChoice = errors.New("no such choice")
)

// visibleWhere is the one predicate deciding public visibility:
// published by $1 and at least one choice attached. Every read path
// goes through it.
const visibleWhere = `q.pub_date <= $1
	AND EXISTS (SELECT 1 FROM choice c WHERE c.question_id = q.id)`

// QuestionStore runs all question and choice queries against a single
// *sql.DB. Reads take an explicit "now" so visibility is a pure
// function of the clock and the stored rows.
type QuestionStore struct {
	db *sql.DB
}

func NewQuestionStore(db *sql.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// normalize clamps timestamps to UTC at second precision. One shape for
// every stored and compared timestamp keeps pub_date comparisons exact
// on both backends.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// ListVisible returns the visible questions as of now, most recently
// published first. Ties on pub_date fall back to creation order. An
// empty result is not an error.
func (s *QuestionStore) ListVisible(now time.Time) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT q.id, q.question_text, q.pub_date, q.created_at
		FROM question q
		WHERE `+visibleWhere+`
		ORDER BY q.pub_date DESC, q.created_at, q.id
	`, normalize(now))
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// GetVisible returns the question with the given id if it is visible as
// of now, and ErrNotFound otherwise.
func (s *QuestionStore) GetVisible(id string, now time.Time) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRow(`
		SELECT q.id, q.question_text, q.pub_date, q.created_at
		FROM question q
		WHERE `+visibleWhere+`
		AND q.id = $2
	`, normalize(now), id).Scan(&q.ID, &q.QuestionText, &q.PubDate, &q.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	return q, nil
}

// ListChoices returns the choices of a question. It does not apply the
// visibility filter; callers resolve the question first.
func (s *QuestionStore) ListChoices(questionID string) ([]models.Choice, error) {
	rows, err := s.db.Query(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// CreateQuestion inserts a question. pubDate may lie in the future, in
// which case the question stays invisible until that instant passes.
func (s *QuestionStore) CreateQuestion(text string, pubDate, now time.Time) (models.Question, error) {
	q := models.Question{
		ID:           uuid.NewString(),
		QuestionText: text,
		PubDate:      normalize(pubDate),
		CreatedAt:    normalize(now),
	}

	_, err := s.db.Exec(`
		INSERT INTO question (id, question_text, pub_date, created_at)
		VALUES ($1, $2, $3, $4)
	`, q.ID, q.QuestionText, q.PubDate, q.CreatedAt)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

// AddChoice attaches a new choice to an existing question. Adding the
// first choice is what makes a published question visible.
func (s *QuestionStore) AddChoice(questionID, text string) (models.Choice, error) {
	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM question q WHERE q.id = $1`, questionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.Choice{}, ErrNotFound
	}
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to query question: %w", err)
	}

	c := models.Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		ChoiceText: text,
	}

	_, err = s.db.Exec(`
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, 0)
	`, c.ID, c.QuestionID, c.ChoiceText)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	return c, nil
}

// DeleteQuestion removes a question and its choices. Unlike the read
// path it ignores visibility: administrators can delete unpublished and
// choice-less questions too.
func (s *QuestionStore) DeleteQuestion(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM choice WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete choices: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// Vote increments the counter of one choice of a visible question. The
// increment is a single UPDATE, so concurrent votes never lose counts.
func (s *QuestionStore) Vote(questionID, choiceID string, now time.Time) error {
	if _, err := s.GetVisible(questionID, now); err != nil {
		return err
	}

	res, err := s.db.Exec(`
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNoSuchChoice
	}

	return nil
}
