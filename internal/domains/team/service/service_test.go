package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"teammeet/config"
	"teammeet/infras/otel/mocks"
	projectMocks "teammeet/internal/domains/project/mocks"
	teamMocks "teammeet/internal/domains/team/mocks"
	"teammeet/internal/domains/team/model"
	"teammeet/internal/domains/team/model/dto"
	"teammeet/internal/domains/team/service"
	cacheMocks "teammeet/shared/cache/mocks"
	"teammeet/shared/constant"
	"teammeet/shared/failure"
)

func newTeamService(ctrl *gomock.Controller) (service.Team, *teamMocks.MockTeam, *projectMocks.MockProject, *cacheMocks.MockRedisCache) {
	mockRepo := teamMocks.NewMockTeam(ctrl)
	mockProjects := projectMocks.NewMockProject(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockProjects, cfg, mockCache, mocks.NewOtel()), mockRepo, mockProjects, mockCache
}

func TestTeamService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockProjects, _ := newTeamService(ctrl)

	req := dto.CreateTeamRequest{
		Name:         "Platform",
		NumOfMembers: 6,
		ProjectID:    2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
		wantCode  int
		wantID    int64
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockProjects.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)
			},
			wantID: 4,
		},
		{
			name: "project does not exist",
			setupMock: func() {
				mockProjects.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "project not found",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockProjects.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: "failed to create team: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			id, err := svc.Create(ctx, req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestTeamService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newTeamService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
		wantCode  int
		wantName  string
	}{
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Team{ID: 4, Name: "Platform", NumOfMembers: 6, ProjectID: 2}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantName: "Platform",
		},
		{
			name: "team not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Team{}, nil)
			},
			wantErr:  "team not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 4)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, res.Name)
			}
		})
	}
}

func TestTeamService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTeamService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "team not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  "team not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 4)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
