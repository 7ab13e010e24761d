// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package store implements the question visibility filter and the
lifecycle mutations behind the HTTP handlers.

# Visibility

A question is visible iff its pub_date has passed and it has at least
one choice. Both conditions live in a single SQL predicate shared by
ListVisible and GetVisible, so no read path can apply half the rule:

	q.pub_date <= $1
	AND EXISTS (SELECT 1 FROM choice c WHERE c.question_id = q.id)

Reads take "now" as an explicit argument rather than consulting the
clock themselves. Handlers pass wall-clock time; tests pass whatever
instant the scenario needs.

GetVisible returns the same ErrNotFound whether the id is unknown, the
question is future-dated, or it has no choices. The uniform error keeps
unpublished and empty questions undisclosed.

# Ordering

ListVisible orders by pub_date descending, then creation time, then id.
The id tail makes the order deterministic for rows created within the
same second.

# Timestamps

All timestamps are normalized to UTC at second precision before they
are stored or compared. At that precision a timestamp renders to one
fixed-width string, so pub_date comparisons behave identically on
SQLite (text affinity) and PostgreSQL (native timestamps).

# Mutations

CreateQuestion, AddChoice, DeleteQuestion, and Vote back the admin and
voting endpoints. Vote re-checks visibility and then increments the
counter with a single UPDATE; a zero-row update maps to ErrNoSuchChoice.
*/
package store
