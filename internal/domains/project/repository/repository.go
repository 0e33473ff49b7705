package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"teammeet/infras/otel"
	"teammeet/infras/postgres"
	"teammeet/internal/domains/project/model"
	gDto "teammeet/shared/dto"
	gRepo "teammeet/shared/repository"
)

type Project interface {
	Insert(ctx context.Context, model model.Project) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Project, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Project, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Project]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Project {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Project](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
