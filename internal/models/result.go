package models

import "database/sql"

// ResultRow is one recorded attempt joined with its content title and user name.
type ResultRow struct {
	ContentID    int64          `db:"content_id"`
	ContentTitle string         `db:"content_title"`
	UserID       int64          `db:"user_id"`
	UserName     string         `db:"user_name"`
	Score        int64          `db:"score"`
	MaxScore     int64          `db:"max_score"`
	CompletedAt  sql.NullString `db:"completed_at"`
}

// DisplayRow is a ResultRow prepared for output. Position is the 1-based
// place of the row inside its content group.
type DisplayRow struct {
	Position     int
	ContentID    int64
	ContentTitle string
	UserID       int64
	UserName     string
	Score        int64
	MaxScore     int64
	ScoreDisplay string
	DateDisplay  string
	StripeClass  string
}
