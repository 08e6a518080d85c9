package queries

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/queries/slot.go -package=mock_queries

import (
	"context"
	"log/slog"
	"time"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/domain/user"
	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	CounterByDay(ctx context.Context, dayKey daykey.Key) (*slot.Counter, error)
	CountActive(ctx context.Context, userID uuid.UUID, dayKey daykey.Key, slotType slot.Type) (int, error)
}

// Reclaimer releases the caller's own lapsed reservations before a read.
type Reclaimer interface {
	ReclaimUserExpired(ctx context.Context, userID uuid.UUID) (int, error)
}

type SlotQueries interface {
	PublicSummary(ctx context.Context) (*SlotSummaryView, error)
	Summary(ctx context.Context, userID uuid.UUID, role user.Role) (*SlotSummaryView, error)
}

type slotQueriesImpl struct {
	readStore SlotReadStore
	reclaimer Reclaimer
	policy    slot.Policy
	clock     clock.Clock
	cfg       config.SlotConfig
	loc       *time.Location
}

func NewSlotQueries(readStore SlotReadStore, reclaimer Reclaimer, policy slot.Policy, clk clock.Clock, cfg config.Config) SlotQueries {
	return &slotQueriesImpl{
		readStore: readStore,
		reclaimer: reclaimer,
		policy:    policy,
		clock:     clk,
		cfg:       cfg.Slot,
		loc:       cfg.Slot.ServiceLocation(),
	}
}

func (q *slotQueriesImpl) PublicSummary(ctx context.Context) (*SlotSummaryView, error) {
	dayKey := daykey.For(q.clock.Now(), q.loc)
	return q.global(ctx, dayKey)
}

func (q *slotQueriesImpl) Summary(ctx context.Context, userID uuid.UUID, role user.Role) (*SlotSummaryView, error) {
	if q.cfg.ReclaimOnStatusRead {
		if _, err := q.reclaimer.ReclaimUserExpired(ctx, userID); err != nil {
			slog.WarnContext(ctx, "read-path reclaim failed", "user_id", userID, "error", err)
		}
	}

	dayKey := daykey.For(q.clock.Now(), q.loc)
	view, err := q.global(ctx, dayKey)
	if err != nil {
		return nil, err
	}

	activeFree, err := q.readStore.CountActive(ctx, userID, dayKey, slot.TypeFree)
	if err != nil {
		return nil, err
	}
	activeAd, err := q.readStore.CountActive(ctx, userID, dayKey, slot.TypeAd)
	if err != nil {
		return nil, err
	}

	freeAllowance := q.policy.Allowance(role, slot.TypeFree)
	view.Personal = &PersonalSlotView{
		FreeDailyLimit:             freeAllowance,
		ActiveFreeReservationCount: activeFree,
		CanUseFreeSlotToday:        activeFree < freeAllowance && view.FreeRemaining > 0,
		AdDailyLimit:               q.policy.Allowance(role, slot.TypeAd),
		ActiveAdReservationCount:   activeAd,
	}
	return view, nil
}

// A day nobody reserved on yet has no row; report the configured limits untouched.
func (q *slotQueriesImpl) global(ctx context.Context, dayKey daykey.Key) (*SlotSummaryView, error) {
	counter, err := q.readStore.CounterByDay(ctx, dayKey)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		counter = &slot.Counter{DayKey: dayKey, FreeLimit: q.cfg.FreeDailyLimit, AdLimit: q.cfg.AdDailyLimit}
	}
	c := counter.Clamped()
	return &SlotSummaryView{
		DayKey:        dayKey.String(),
		FreeLimit:     c.FreeLimit,
		FreeUsed:      c.FreeUsed,
		FreeRemaining: c.FreeLimit - c.FreeUsed,
		AdLimit:       c.AdLimit,
		AdUsed:        c.AdUsed,
		AdRemaining:   c.AdLimit - c.AdUsed,
	}, nil
}
