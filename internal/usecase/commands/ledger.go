package commands

import (
	"context"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/daykey"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/shared"
)

var ErrCounterMissing = errs.New("daily counter row missing")

// Ledger wraps the daily counter rows. Every call runs inside the caller's transaction.
type Ledger struct {
	freeLimit int32
	adLimit   int32
}

func NewLedger(cfg config.Config) *Ledger {
	return &Ledger{freeLimit: cfg.Slot.FreeDailyLimit, adLimit: cfg.Slot.AdDailyLimit}
}

// GetOrInit upserts the day's row and returns it locked for update.
func (l *Ledger) GetOrInit(ctx context.Context, tx shared.Tx, dayKey daykey.Key) (*slot.Counter, error) {
	if err := tx.Ledger().Ensure(ctx, tx.DB(), dayKey, l.freeLimit, l.adLimit); err != nil {
		return nil, err
	}
	return tx.Ledger().GetForUpdate(ctx, tx.DB(), dayKey)
}

func (l *Ledger) Increment(ctx context.Context, tx shared.Tx, dayKey daykey.Key, t slot.Type) error {
	n, err := tx.Ledger().Adjust(ctx, tx.DB(), dayKey, t, 1)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.Wrap(ErrCounterMissing, string(dayKey))
	}
	return nil
}

// Decrement creates a missing row at zero before releasing.
func (l *Ledger) Decrement(ctx context.Context, tx shared.Tx, dayKey daykey.Key, t slot.Type) error {
	if err := tx.Ledger().Ensure(ctx, tx.DB(), dayKey, l.freeLimit, l.adLimit); err != nil {
		return err
	}
	n, err := tx.Ledger().Adjust(ctx, tx.DB(), dayKey, t, -1)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.Wrap(ErrCounterMissing, string(dayKey))
	}
	return nil
}
