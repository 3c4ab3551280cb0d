package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/h5pboard.git/internal/models"
	"github.com/DanRulev/h5pboard.git/pkg/validator"
)

type ResultsR struct {
	db     QueryI
	prefix string
}

func NewResultsRepository(db QueryI, tablePrefix string) *ResultsR {
	return &ResultsR{
		db:     db,
		prefix: tablePrefix,
	}
}

func (r *ResultsR) resultsQuery() (string, error) {
	if !validator.TablePrefix(r.prefix) {
		return "", fmt.Errorf("invalid table prefix: %q", r.prefix)
	}

	return fmt.Sprintf(`
	SELECT
		hr.content_id,
		hc.title AS content_title,
		hr.user_id,
		wu.display_name AS user_name,
		hr.score,
		hr.max_score,
		hr.finished AS completed_at
	FROM %[1]sh5p_results hr
	INNER JOIN %[1]sh5p_contents hc ON hr.content_id = hc.id
	INNER JOIN %[1]susers wu ON hr.user_id = wu.ID
	ORDER BY hr.content_id ASC, hr.score DESC, hr.id ASC
	`, r.prefix), nil
}

// Results returns every recorded attempt ordered by content id, then by score
// from highest to lowest.
func (r *ResultsR) Results(ctx context.Context) ([]models.ResultRow, error) {
	query, err := r.resultsQuery()
	if err != nil {
		return nil, err
	}

	rows := make([]models.ResultRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select results: %w", err)
	}

	return rows, nil
}
