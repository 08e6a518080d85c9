package repository

//go:generate mockgen -source=slot_ledger.go -destination=../../../tests/mock/repository/slot_ledger.go -package=mock_repository

import (
	"context"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"
)

type SlotLedgerQueries interface {
	EnsureDailyCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureDailyCounterParams) error
	GetDailyCounterForUpdate(ctx context.Context, db sqlc.DBTX, dayKey string) (sqlc.DailySlotCounters, error)
	AdjustDailyCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustDailyCounterParams) (int64, error)
}

type SlotLedgerRepository struct {
	queries SlotLedgerQueries
	db      sqlc.DBTX
}

func NewSlotLedgerRepository(queries SlotLedgerQueries, db sqlc.DBTX) *SlotLedgerRepository {
	return &SlotLedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Ensure is an upsert; an existing row (including one created by a racing caller) is success.
func (r *SlotLedgerRepository) Ensure(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key, freeLimit, adLimit int32) error {
	err := r.queries.EnsureDailyCounter(ctx, tx, sqlc.EnsureDailyCounterParams{
		DayKey:    dayKey.String(),
		FreeLimit: freeLimit,
		AdLimit:   adLimit,
	})
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to ensure daily counter", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return nil
		}
		return wrapped
	}
	return nil
}

func (r *SlotLedgerRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key) (*slot.Counter, error) {
	row, err := r.queries.GetDailyCounterForUpdate(ctx, tx, dayKey.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock daily counter", err)
	}
	return converter.CounterToDomain(row), nil
}

func (r *SlotLedgerRepository) Adjust(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key, slotType slot.Type, delta int32) (int64, error) {
	n, err := r.queries.AdjustDailyCounter(ctx, tx, sqlc.AdjustDailyCounterParams{
		SlotType: slotType.String(),
		Delta:    delta,
		DayKey:   dayKey.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to adjust daily counter", err)
	}
	return n, nil
}
