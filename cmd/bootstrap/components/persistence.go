package components

import (
	"dish-studio/internal/infra/readstore"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/infra/uow"
	"dish-studio/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.SlotReadStore {
				return readstore.NewSlotReadStore(q, db)
			},
			fx.As(new(queries.SlotReadStore)),
		),
		// Creation
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.CreationReadStore {
				return readstore.NewCreationReadStore(q, db)
			},
			fx.As(new(queries.CreationReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
