package repository

import (
	"context"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
)

type DishQueries interface {
	CreateDish(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDishParams) error
	CreateDishDayScore(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDishDayScoreParams) error
}

type DishRepository struct {
	queries DishQueries
	db      sqlc.DBTX
}

func NewDishRepository(queries DishQueries, db sqlc.DBTX) *DishRepository {
	return &DishRepository{
		queries: queries,
		db:      db,
	}
}

// Create must run inside the finalize transaction.
func (r *DishRepository) Create(ctx context.Context, tx sqlc.DBTX, dish *creation.Dish) error {
	if err := r.queries.CreateDish(ctx, tx, converter.DishToInfra(dish)); err != nil {
		return infra.WrapRepoErr("failed to create dish", err)
	}
	err := r.queries.CreateDishDayScore(ctx, tx, sqlc.CreateDishDayScoreParams{
		DishID: dish.ID,
		DayKey: dish.DayKey.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create dish day score", err)
	}
	return nil
}
