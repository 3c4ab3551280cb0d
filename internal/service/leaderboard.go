package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/h5pboard.git/internal/render"
	"go.uber.org/zap"
)

type LeaderboardS struct {
	repo RepositoryI
	html render.Renderer
	text render.Renderer
	log  *zap.Logger
}

func NewLeaderboardService(repo RepositoryI, html, text render.Renderer, log *zap.Logger) *LeaderboardS {
	return &LeaderboardS{
		repo: repo,
		html: html,
		text: text,
		log:  log,
	}
}

// LeaderboardHTML returns the leaderboard as an embeddable markup fragment.
func (l *LeaderboardS) LeaderboardHTML(ctx context.Context) (string, error) {
	return l.render(ctx, l.html)
}

// LeaderboardText returns the leaderboard as plain text.
func (l *LeaderboardS) LeaderboardText(ctx context.Context) (string, error) {
	return l.render(ctx, l.text)
}

func (l *LeaderboardS) render(ctx context.Context, r render.Renderer) (string, error) {
	rows, err := l.repo.Results(ctx)
	if err != nil {
		l.log.Warn("failed to load leaderboard results", zap.Error(err))
		return "", fmt.Errorf("failed to load leaderboard: %w", err)
	}

	l.log.Debug("leaderboard results loaded", zap.Int("rows", len(rows)))

	return r.Render(rows), nil
}
