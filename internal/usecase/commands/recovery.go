package commands

import (
	"context"
	"log/slog"

	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/daykey"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/pkg/metrics"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationNotOwned = errs.New("reservation not owned by user")
)

// Recovery owns every transition that releases quota. A transition whose
// source state no longer matches returns the current row with applied=false
// and touches nothing else, so concurrent callers release at most once.
type Recovery struct {
	uow     shared.UnitOfWork
	ledger  *Ledger
	clock   clock.Clock
	metrics *metrics.Metrics
	cfg     config.SlotConfig
}

func NewRecovery(uow shared.UnitOfWork, ledger *Ledger, clk clock.Clock, m *metrics.Metrics, cfg config.Config) *Recovery {
	return &Recovery{uow: uow, ledger: ledger, clock: clk, metrics: m, cfg: cfg.Slot}
}

func (r *Recovery) HasReservationExpired(res *reservation.Reservation) bool {
	return res.HasExpired(r.clock.Now())
}

func (r *Recovery) Cancel(ctx context.Context, id uuid.UUID) (*reservation.Reservation, bool, error) {
	var (
		out     *reservation.Reservation
		applied bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, applied, err = r.CancelTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return out, applied, nil
}

// CancelForUser is Cancel with an ownership check, for client-facing calls.
func (r *Recovery) CancelForUser(ctx context.Context, userID, id uuid.UUID) (*reservation.Reservation, bool, error) {
	var (
		out     *reservation.Reservation
		applied bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cur, err := tx.Reservations().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return mapReservationErr(err)
		}
		if cur.UserID() != userID {
			return ErrReservationNotOwned
		}
		out, applied, err = r.CancelTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return out, applied, nil
}

func (r *Recovery) Reclaim(ctx context.Context, id uuid.UUID) (*reservation.Reservation, bool, error) {
	var (
		out     *reservation.Reservation
		applied bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, applied, err = r.ReclaimTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if applied {
		r.metrics.ObserveReclaimed(1)
	}
	return out, applied, nil
}

func (r *Recovery) MarkFailed(ctx context.Context, id uuid.UUID) (*reservation.Reservation, bool, error) {
	var (
		out     *reservation.Reservation
		applied bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, applied, err = r.MarkFailedTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return out, applied, nil
}

// CancelTx releases the slot and re-grants an attached ad reward.
func (r *Recovery) CancelTx(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, bool, error) {
	res, applied, err := r.apply(ctx, tx, id, reservation.Cancel)
	if err != nil || !applied {
		return res, applied, err
	}
	if rewardID := res.AdRewardID(); rewardID != nil {
		if _, err := tx.AdRewards().Regrant(ctx, tx.DB(), *rewardID, res.ID()); err != nil {
			return nil, false, err
		}
	}
	return res, true, nil
}

// ReclaimTx does not count metrics; callers observe after commit.
func (r *Recovery) ReclaimTx(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, bool, error) {
	return r.apply(ctx, tx, id, reservation.Reclaim)
}

func (r *Recovery) MarkFailedTx(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, bool, error) {
	return r.apply(ctx, tx, id, reservation.MarkFailed)
}

// ReclaimUserExpiredTx reclaims the user's lapsed RESERVED rows for the day.
func (r *Recovery) ReclaimUserExpiredTx(ctx context.Context, tx shared.Tx, userID uuid.UUID, dayKey daykey.Key) (int, error) {
	ids, err := tx.Reservations().ListUserExpiredIDs(ctx, tx.DB(), userID, dayKey, r.clock.Now())
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		_, applied, err := r.ReclaimTx(ctx, tx, id)
		if err != nil {
			return 0, err
		}
		if applied {
			n++
		}
	}
	return n, nil
}

// ReclaimUserExpired is the read-path reclaim used by the slot summary.
func (r *Recovery) ReclaimUserExpired(ctx context.Context, userID uuid.UUID) (int, error) {
	dayKey := daykey.For(r.clock.Now(), r.cfg.ServiceLocation())
	var n int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = r.ReclaimUserExpiredTx(ctx, tx, userID, dayKey)
		return err
	})
	if err != nil {
		return 0, err
	}
	r.metrics.ObserveReclaimed(n)
	return n, nil
}

// Sweep reclaims up to limit lapsed reservations, one transaction each, so a
// single bad row cannot hold back the batch.
func (r *Recovery) Sweep(ctx context.Context, limit int32) (int, error) {
	var ids []uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Reservations().ListExpiredIDs(ctx, tx.DB(), r.clock.Now(), limit)
		return err
	})
	if err != nil {
		return 0, err
	}

	n := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return n, ctx.Err()
		}
		_, applied, err := r.Reclaim(ctx, id)
		if err != nil {
			slog.ErrorContext(ctx, "reclaim failed", "reservation_id", id, "error", err)
			continue
		}
		if applied {
			n++
		}
	}
	return n, nil
}

func (r *Recovery) apply(ctx context.Context, tx shared.Tx, id uuid.UUID, t reservation.Transition) (*reservation.Reservation, bool, error) {
	res, applied, err := tx.Reservations().Transition(ctx, tx.DB(), id, t)
	if err != nil {
		return nil, false, err
	}
	if !applied {
		cur, err := tx.Reservations().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return nil, false, mapReservationErr(err)
		}
		slog.DebugContext(ctx, "transition skipped",
			"reservation_id", id,
			"transition", t.Name,
			"status", cur.Status().String(),
		)
		return cur, false, nil
	}
	if t.Releases {
		if err := r.ledger.Decrement(ctx, tx, res.DayKey(), res.SlotType()); err != nil {
			return nil, false, err
		}
	}
	return res, true, nil
}

func mapReservationErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrReservationNotFound
	}
	return err
}
