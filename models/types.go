package models

import (
	"time"

	"github.com/dustin/go-humanize"
)

// RecentWindow is how far back a publication date may lie for a question
// to still count as recently published.
const RecentWindow = 24 * time.Hour

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string    `json:"question_id"`
	PubDate    time.Time `json:"pub_date"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
}

type QuestionDetailResponse struct {
	Question QuestionSummary `json:"question"`
	Choices  []ChoiceOption  `json:"choices"`
}

type QuestionResultsResponse struct {
	Question   QuestionSummary `json:"question"`
	Choices    []Choice        `json:"choices"`
	TotalVotes int             `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Question struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// WasPublishedRecently reports whether the question's publication date
// falls inside RecentWindow as of now.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return WasPublishedRecently(q.PubDate, now)
}

// WasPublishedRecently is true iff now-RecentWindow < pubDate <= now.
// Exactly now counts as recent; exactly now-RecentWindow does not.
// A future pubDate is never recent, only not yet published.
func WasPublishedRecently(pubDate, now time.Time) bool {
	return !pubDate.After(now) && now.Sub(pubDate) < RecentWindow
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// ChoiceOption is the ballot-facing shape of a choice. Vote counts are
// left out so the detail page cannot bias voters.
type ChoiceOption struct {
	ID         string `json:"id"`
	ChoiceText string `json:"choice_text"`
}

// QuestionSummary is the rendered shape of a question in list and detail
// responses, evaluated against a specific instant.
type QuestionSummary struct {
	ID                   string    `json:"id"`
	QuestionText         string    `json:"question_text"`
	PubDate              time.Time `json:"pub_date"`
	WasPublishedRecently bool      `json:"was_published_recently"`
	PublishedAgo         string    `json:"published_ago"`
}

// NewQuestionSummary renders q as of now.
func NewQuestionSummary(q Question, now time.Time) QuestionSummary {
	return QuestionSummary{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		WasPublishedRecently: q.WasPublishedRecently(now),
		PublishedAgo:         humanize.RelTime(q.PubDate, now, "ago", "from now"),
	}
}
