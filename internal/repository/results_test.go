package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DanRulev/h5pboard.git/internal/models"
	mock_repository "github.com/DanRulev/h5pboard.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultsMock(t *testing.T, ctrl *gomock.Controller, prefix string, setupMock func(*mock_repository.MockQueryI)) *ResultsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewResultsRepository(db, prefix)
}

func TestResultsR_Results(t *testing.T) {
	t.Parallel()

	stored := []models.ResultRow{
		{ContentID: 5, ContentTitle: "Quiz A", UserID: 1, UserName: "Alice", Score: 8, MaxScore: 10, CompletedAt: sql.NullString{String: "1704103200", Valid: true}},
		{ContentID: 5, ContentTitle: "Quiz A", UserID: 2, UserName: "Bob", Score: 6, MaxScore: 10},
	}

	tests := []struct {
		name    string
		prefix  string
		f       func(*mock_repository.MockQueryI)
		want    []models.ResultRow
		wantErr bool
	}{
		{
			name:   "success",
			prefix: "wp_",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
						assert.Contains(t, query, "FROM wp_h5p_results hr")
						assert.Contains(t, query, "INNER JOIN wp_h5p_contents hc")
						assert.Contains(t, query, "INNER JOIN wp_users wu")
						assert.Contains(t, query, "ORDER BY hr.content_id ASC, hr.score DESC")
						*dest.(*[]models.ResultRow) = stored
						return nil
					})
			},
			want: stored,
		},
		{
			name:   "empty",
			prefix: "",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
						assert.Contains(t, query, "FROM h5p_results hr")
						return nil
					})
			},
			want: []models.ResultRow{},
		},
		{
			name:   "db error",
			prefix: "wp_",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:    "invalid prefix never queries",
			prefix:  "wp_; DROP TABLE x; --",
			f:       nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resultsR := newResultsMock(t, ctrl, tt.prefix, tt.f)

			got, err := resultsR.Results(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
