package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"teammeet/infras/otel"
	"teammeet/infras/postgres"
	"teammeet/internal/domains/meeting/model"
	gDto "teammeet/shared/dto"
	gRepo "teammeet/shared/repository"
)

type Meeting interface {
	Insert(ctx context.Context, model model.Meeting) (int64, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Meeting) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Meeting, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Meeting, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Meeting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Meeting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Meeting](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
