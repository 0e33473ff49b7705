package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"teammeet/config"
	"teammeet/infras/otel/mocks"
	s3Mocks "teammeet/infras/s3/mocks"
	projectMocks "teammeet/internal/domains/project/mocks"
	"teammeet/internal/domains/project/model"
	"teammeet/internal/domains/project/model/dto"
	"teammeet/internal/domains/project/service"
	cacheMocks "teammeet/shared/cache/mocks"
	"teammeet/shared/constant"
	"teammeet/shared/failure"
)

func newProjectService(ctrl *gomock.Controller) (service.Project, *projectMocks.MockProject, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	mockRepo := projectMocks.NewMockProject(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "teammeet-uploads"

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3), mockRepo, mockS3, mockCache
}

func TestProjectService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newProjectService(ctrl)

	req := dto.CreateProjectRequest{
		Name:        "Apollo",
		Description: "Lunar landing simulator",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(2), nil)
			},
			wantID: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			id, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestProjectService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockS3, _ := newProjectService(ctrl)

	req := dto.UploadProjectImageRequest{
		Image: &multipart.FileHeader{Filename: "logo.png"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
		wantCode  int
		wantURL   string
	}{
		{
			name: "successful upload replaces the old image",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{ID: 2, Name: "Apollo", Image: "https://s3/teammeet-uploads/old.png"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "teammeet-uploads", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://s3/teammeet-uploads/new.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("teammeet-uploads", "https://s3/teammeet-uploads/old.png").
					Return("old.png")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "teammeet-uploads", "", "old.png").
					Return(nil)
			},
			wantURL: "https://s3/teammeet-uploads/new.png",
		},
		{
			name: "project not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{}, nil)
			},
			wantErr:  "project not found",
			wantCode: http.StatusNotFound,
		},
		{
			name: "upload failure leaves the project untouched",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{ID: 2, Name: "Apollo"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 unavailable"))
			},
			wantErr: "failed to upload image: s3 unavailable",
		},
		{
			name: "db update failure rolls the upload back",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{ID: 2, Name: "Apollo"}, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://s3/teammeet-uploads/new.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "teammeet-uploads", gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: "failed to update project image: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			url, err := svc.UploadImage(ctx, req, 2)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
			}
		})
	}
}

func TestProjectService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockS3, _ := newProjectService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name: "delete removes the stored image too",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{ID: 2, Name: "Apollo", Image: "https://s3/teammeet-uploads/logo.png"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("teammeet-uploads", "https://s3/teammeet-uploads/logo.png").
					Return("logo.png")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "teammeet-uploads", "", "logo.png").
					Return(nil)
			},
		},
		{
			name: "delete without image skips S3",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{ID: 2, Name: "Apollo"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "project not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Project{}, nil)
			},
			wantErr:  "project not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 2)

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
