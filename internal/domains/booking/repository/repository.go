package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"teammeet/config"
	"teammeet/infras/otel"
	"teammeet/infras/postgres"
	"teammeet/internal/domains/booking/model"
	gDto "teammeet/shared/dto"
	gRepo "teammeet/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int64, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel, cfg *config.Config) Booking {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}

	// The account table name comes from config. It is aliased to "users" so
	// the joined columns declared on the model keep resolving.
	repo.SetJoin(fmt.Sprintf(
		"JOIN rooms ON rooms.id = bookings.room_id"+
			" JOIN %s users ON users.id = bookings.user_id"+
			" JOIN meetings ON meetings.id = bookings.meeting_id"+
			" JOIN teams ON teams.id = meetings.team_id"+
			" JOIN projects ON projects.id = teams.project_id",
		cfg.DB.Postgres.AccountsTable,
	))

	// Listings group by room first, latest slot on top within each room.
	repo.SetTieBreaker(model.TableName + "." + model.FieldStartHour + " " + gDto.SortDirDesc)

	return repo
}
