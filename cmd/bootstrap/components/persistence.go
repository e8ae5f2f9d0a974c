package components

import (
	"bookloop/internal/infra/readstore"
	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/infra/uow"
	"bookloop/internal/usecase/queries"
	"bookloop/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Book
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		// UserBook
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserBookViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserBookReadStore,
			fx.As(new(queries.UserBookReadStore)),
		),
		// ExchangeRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExchangeRequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewExchangeRequestReadStore,
			fx.As(new(queries.ExchangeRequestReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
