package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/h5pboard.git/internal/models"
	"github.com/goodsign/monday"
)

const (
	StripeEven = "even"
	StripeOdd  = "odd"

	NotAvailable = "N/A"
	EmptyNotice  = "No H5P results found yet."

	DefaultLocale     = monday.LocaleEnUS
	DefaultDateLayout = "January 2, 2006 3:04 pm"
)

// Renderer turns an ordered result set into formatted output.
type Renderer interface {
	Render(rows []models.ResultRow) string
}

// Options carries the date settings the output depends on.
// Zero values fall back to en_US, UTC and DefaultDateLayout.
type Options struct {
	Locale     monday.Locale
	Location   *time.Location
	DateLayout string
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	return o
}

// Build converts rows into display rows in a single pass. Rows must already be
// ordered by content id ascending, then score descending; striping restarts
// at even whenever the content id changes.
func Build(rows []models.ResultRow, opts Options) []models.DisplayRow {
	opts = opts.withDefaults()

	out := make([]models.DisplayRow, 0, len(rows))

	var (
		seen     bool
		groupKey int64
		position int
	)

	for _, row := range rows {
		if !seen || row.ContentID != groupKey {
			seen = true
			groupKey = row.ContentID
			position = 0
		}

		stripe := StripeEven
		if position%2 != 0 {
			stripe = StripeOdd
		}
		position++

		score, maxScore := Clamp(row.Score), Clamp(row.MaxScore)

		out = append(out, models.DisplayRow{
			Position:     position,
			ContentID:    Clamp(row.ContentID),
			ContentTitle: row.ContentTitle,
			UserID:       Clamp(row.UserID),
			UserName:     row.UserName,
			Score:        score,
			MaxScore:     maxScore,
			ScoreDisplay: ScoreDisplay(score, maxScore),
			DateDisplay:  dateDisplay(row.CompletedAt.String, row.CompletedAt.Valid, opts),
			StripeClass:  stripe,
		})
	}

	return out
}

// Clamp maps negative values to zero.
func Clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// ScoreDisplay formats "score/max (pct%)", or "score/max" when max is zero.
func ScoreDisplay(score, maxScore int64) string {
	score, maxScore = Clamp(score), Clamp(maxScore)
	if maxScore == 0 {
		return fmt.Sprintf("%d/%d", score, maxScore)
	}

	pct := math.Round(float64(score) / float64(maxScore) * 100)
	return fmt.Sprintf("%d/%d (%.0f%%)", score, maxScore, pct)
}

// DateDisplay formats a raw completion timestamp, or returns NotAvailable when
// it is missing or cannot be parsed.
func DateDisplay(raw string, opts Options) string {
	return dateDisplay(raw, true, opts.withDefaults())
}

func dateDisplay(raw string, valid bool, opts Options) string {
	if !valid {
		return NotAvailable
	}

	t, ok := parseCompletedAt(raw)
	if !ok {
		return NotAvailable
	}

	return monday.Format(t.In(opts.Location), opts.DateLayout, opts.Locale)
}

// Layouts without a zone are read as UTC.
var completedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseCompletedAt(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	// h5p_results.finished holds unix seconds
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs <= 0 {
			return time.Time{}, false
		}
		return time.Unix(secs, 0).UTC(), true
	}

	for _, layout := range completedAtLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil && !t.IsZero() {
			return t, true
		}
	}

	return time.Time{}, false
}
