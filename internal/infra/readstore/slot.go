package readstore

import (
	"context"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

type SlotReadQueries interface {
	GetDailyCounter(ctx context.Context, db sqlc.DBTX, dayKey string) (sqlc.DailySlotCounters, error)
	CountActiveReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsParams) (int64, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) CounterByDay(ctx context.Context, dayKey daykey.Key) (*slot.Counter, error) {
	row, err := r.queries.GetDailyCounter(ctx, r.db, dayKey.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read daily counter", err)
	}
	return converter.CounterToDomain(row), nil
}

func (r *SlotReadStore) CountActive(ctx context.Context, userID uuid.UUID, dayKey daykey.Key, slotType slot.Type) (int, error) {
	n, err := r.queries.CountActiveReservations(ctx, r.db, sqlc.CountActiveReservationsParams{
		UserID:   userID,
		DayKey:   dayKey.String(),
		SlotType: slotType.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return int(n), nil
}
