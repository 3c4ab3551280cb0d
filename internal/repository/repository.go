package repository

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_repository

type QueryI interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*ResultsR
}

func NewRepository(db QueryI, tablePrefix string) Repository {
	return Repository{
		ResultsR: NewResultsRepository(db, tablePrefix),
	}
}
