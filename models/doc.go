// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question_text, optional pub_date
  - AddChoiceRequest: choice_text
  - VoteRequest: choice_id

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: question_id, pub_date
  - AddChoiceResponse: choice_id
  - QuestionListResponse: questions
  - QuestionDetailResponse: question, choices (no vote counts)
  - QuestionResultsResponse: question, choices, total_votes
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Question: poll prompt with a publication timestamp
  - Choice: selectable option with a vote counter
  - QuestionSummary: question rendered against a specific instant
  - ChoiceOption: choice without its vote count

# Publication Recency

WasPublishedRecently classifies a question's age against RecentWindow
(24 hours):

	recent := models.WasPublishedRecently(pubDate, now)

The window is half-open: pubDate equal to now is recent, pubDate equal
to now-24h is not, and future dates are never recent.
*/
package models
