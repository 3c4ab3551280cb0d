package service

import (
	"context"

	"github.com/DanRulev/h5pboard.git/internal/models"
	"github.com/DanRulev/h5pboard.git/internal/render"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock_service

type RepositoryI interface {
	Results(ctx context.Context) ([]models.ResultRow, error)
}

type Service struct {
	*LeaderboardS
}

func InitServices(repo RepositoryI, opts render.Options, log *zap.Logger) *Service {
	return &Service{
		LeaderboardS: NewLeaderboardService(repo, render.NewHTMLRenderer(opts), render.NewTextRenderer(opts), log),
	}
}
