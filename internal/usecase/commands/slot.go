package commands

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/commands/slot.go -package=mock_commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dish-studio/internal/domain/adreward"
	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	"dish-studio/internal/domain/user"
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
	ErrFreeSlotLimitReached  = errs.New("free slot limit reached for today")
	ErrAdSlotLimitReached    = errs.New("ad slot limit reached for today")
	ErrSlotCapacityExhausted = errs.New("daily slot capacity exhausted")
	ErrAdRewardNotFound      = errs.New("ad reward not found")
	ErrAdRewardUnavailable   = errs.New("ad reward cannot be used")
)

type ReserveInput struct {
	UserID         uuid.UUID
	Role           user.Role
	IdempotencyKey string
	AdRewardID     *uuid.UUID
}

type ReserveResult struct {
	Reservation *reservation.Reservation
	Replayed    bool
}

type SlotCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*reservation.Reservation, error)
}

type slotUseCaseImpl struct {
	uow      shared.UnitOfWork
	ledger   *Ledger
	recovery *Recovery
	policy   slot.Policy
	clock    clock.Clock
	metrics  *metrics.Metrics
	ttl      time.Duration
	loc      *time.Location
}

func NewSlotCommands(
	uow shared.UnitOfWork,
	ledger *Ledger,
	recovery *Recovery,
	policy slot.Policy,
	clk clock.Clock,
	m *metrics.Metrics,
	cfg config.Config,
) SlotCommands {
	return &slotUseCaseImpl{
		uow:      uow,
		ledger:   ledger,
		recovery: recovery,
		policy:   policy,
		clock:    clk,
		metrics:  m,
		ttl:      cfg.Slot.ReservationTTL,
		loc:      cfg.Slot.ServiceLocation(),
	}
}

// Reserve holds one slot for the caller. Lock order inside the transaction is
// counter row, then ad reward row, then the new reservation.
func (uc *slotUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	slotType := slot.TypeFree
	if in.AdRewardID != nil {
		slotType = slot.TypeAd
	}

	// Committed separately so a quota rejection below does not roll it back.
	if _, err := uc.recovery.ReclaimUserExpired(ctx, in.UserID); err != nil {
		slog.WarnContext(ctx, "reclaim before reserve failed", "user_id", in.UserID, "error", err)
	}

	now := uc.clock.Now()
	dayKey := daykey.For(now, uc.loc)

	var result *ReserveResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		existing, err := tx.Reservations().FindByUserAndKey(ctx, tx.DB(), in.UserID, key)
		if err == nil {
			result = &ReserveResult{Reservation: existing, Replayed: true}
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		counter, err := uc.ledger.GetOrInit(ctx, tx, dayKey)
		if err != nil {
			return err
		}

		if in.AdRewardID != nil {
			reward, err := tx.AdRewards().FindByIDForUpdate(ctx, tx.DB(), *in.AdRewardID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrAdRewardNotFound
				}
				return err
			}
			if err := reward.CheckUsable(in.UserID, now); err != nil {
				return errs.Mark(err, ErrAdRewardUnavailable)
			}
		}

		active, err := tx.Reservations().CountActive(ctx, tx.DB(), in.UserID, dayKey, slotType)
		if err != nil {
			return err
		}
		if active >= uc.policy.Allowance(in.Role, slotType) {
			if slotType == slot.TypeAd {
				return ErrAdSlotLimitReached
			}
			return ErrFreeSlotLimitReached
		}
		if !counter.HasCapacity(slotType) {
			return ErrSlotCapacityExhausted
		}

		res, err := reservation.NewReservation(in.UserID, key, dayKey, slotType, in.AdRewardID, now, uc.ttl)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		if err := uc.ledger.Increment(ctx, tx, dayKey, slotType); err != nil {
			return err
		}
		if in.AdRewardID != nil {
			ok, err := tx.AdRewards().MarkUsed(ctx, tx.DB(), *in.AdRewardID, res.ID(), now)
			if err != nil {
				return err
			}
			if !ok {
				return errs.Mark(adreward.ErrRewardUsed, ErrAdRewardUnavailable)
			}
		}
		result = &ReserveResult{Reservation: res}
		return nil
	})
	if err != nil {
		// A concurrent submit with the same key won the insert; hand back its row.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uc.replayReservation(ctx, in.UserID, key, slotType)
		}
		uc.metrics.ObserveAllocation(slotType.String(), allocationResult(err))
		return nil, err
	}

	if result.Replayed {
		uc.metrics.ObserveAllocation(result.Reservation.SlotType().String(), metrics.AllocationReplayed)
	} else {
		uc.metrics.ObserveAllocation(slotType.String(), metrics.AllocationGranted)
		slog.InfoContext(ctx, "slot reserved",
			"reservation_id", result.Reservation.ID(),
			"user_id", in.UserID,
			"slot_type", slotType.String(),
			"day_key", dayKey.String(),
		)
	}
	return result, nil
}

func (uc *slotUseCaseImpl) replayReservation(ctx context.Context, userID uuid.UUID, key string, slotType slot.Type) (*ReserveResult, error) {
	res, err := uc.uow.CommandReads().ReservationByUserAndKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	uc.metrics.ObserveAllocation(slotType.String(), metrics.AllocationReplayed)
	return &ReserveResult{Reservation: res, Replayed: true}, nil
}

func (uc *slotUseCaseImpl) Cancel(ctx context.Context, userID, reservationID uuid.UUID) (*reservation.Reservation, error) {
	res, _, err := uc.recovery.CancelForUser(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func allocationResult(err error) string {
	switch {
	case errs.Is(err, ErrFreeSlotLimitReached), errs.Is(err, ErrAdSlotLimitReached):
		return metrics.AllocationPersonalLimit
	case errs.Is(err, ErrSlotCapacityExhausted):
		return metrics.AllocationGlobalCapacity
	default:
		return metrics.AllocationRejected
	}
}
