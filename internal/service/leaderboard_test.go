package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/h5pboard.git/internal/models"
	"github.com/DanRulev/h5pboard.git/internal/render"
	mock_service "github.com/DanRulev/h5pboard.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLeaderboardServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *LeaderboardS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return InitServices(repo, render.Options{}, zap.NewNop()).LeaderboardS
}

var serviceRows = []models.ResultRow{
	{ContentID: 5, ContentTitle: "Quiz A", UserID: 1, UserName: "Alice", Score: 8, MaxScore: 10},
	{ContentID: 5, ContentTitle: "Quiz A", UserID: 2, UserName: "Bob", Score: 6, MaxScore: 10},
}

func TestLeaderboardS_LeaderboardHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		f            func(*mock_service.MockRepositoryI)
		wantContains []string
		wantErr      bool
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return(serviceRows, nil)
			},
			wantContains: []string{`<tr class="even">`, `<tr class="odd">`, "8/10 (80%)", "Bob"},
		},
		{
			name: "no results",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return([]models.ResultRow{}, nil)
			},
			wantContains: []string{render.EmptyNotice},
		},
		{
			name: "repository error",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			leaderboardS := newLeaderboardServiceMock(t, ctrl, tt.f)

			got, err := leaderboardS.LeaderboardHTML(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLeaderboardS_LeaderboardText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		want    string
		wantErr bool
	}{
		{
			name: "success",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return(serviceRows, nil)
			},
			want: "🏆 Quiz A (#5)\n1. Alice (#1) 8/10 (80%) · N/A\n2. Bob (#2) 6/10 (60%) · N/A",
		},
		{
			name: "no results",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return(nil, nil)
			},
			want: render.EmptyNotice,
		},
		{
			name: "repository error",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().Results(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			leaderboardS := newLeaderboardServiceMock(t, ctrl, tt.f)

			got, err := leaderboardS.LeaderboardText(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
